// File path: internal/docgen/config.go
package docgen

import (
	"encoding/json"
	"reflect"
	"sort"
	"sync"
)

// Config is the full configuration record behind every document type. It is
// always a superset: a fresh record carries a default for every known field,
// and a partial merge only ever overwrites the fields it names.
type Config struct {
	// Business information
	PlatformType   string `json:"platform_type"`
	WebsiteURL     string `json:"website_url"`
	WebsiteName    string `json:"website_name"`
	AppName        string `json:"app_name"`
	BusinessType   string `json:"business_type"`
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	Country        string `json:"country"`
	EffectiveDate  string `json:"effective_date"`
	ContactEmail   string `json:"contact_email"`
	ContactPhone   string `json:"contact_phone"`

	// Data collection
	CollectsName           bool `json:"collects_name"`
	CollectsEmail          bool `json:"collects_email"`
	CollectsPhone          bool `json:"collects_phone"`
	CollectsAddress        bool `json:"collects_address"`
	CollectsBillingAddress bool `json:"collects_billing_address"`
	CollectsJobTitle       bool `json:"collects_job_title"`
	CollectsPaymentInfo    bool `json:"collects_payment_info"`
	CollectsAge            bool `json:"collects_age"`
	CollectsUsername       bool `json:"collects_username"`
	CollectsPassword       bool `json:"collects_password"`

	// Tracking technologies
	UsesCookies      bool `json:"uses_cookies"`
	UsesWebBeacons   bool `json:"uses_web_beacons"`
	UsesLocalStorage bool `json:"uses_local_storage"`
	UsesSessions     bool `json:"uses_sessions"`
	UsesGoogleMaps   bool `json:"uses_google_maps"`

	// Social login
	SocialLoginFacebook bool `json:"social_login_facebook"`
	SocialLoginGoogle   bool `json:"social_login_google"`
	SocialLoginTwitter  bool `json:"social_login_twitter"`
	SocialLoginGitHub   bool `json:"social_login_github"`
	SocialLoginLinkedIn bool `json:"social_login_linkedin"`

	// Marketing and advertising
	HasEmailNewsletter bool   `json:"has_email_newsletter"`
	UsesAnalytics      bool   `json:"uses_analytics"`
	AnalyticsProvider  string `json:"analytics_provider"`
	DisplaysAds        bool   `json:"displays_ads"`
	UsesFacebookPixel  bool   `json:"uses_facebook_pixel"`
	UsesRetargeting    bool   `json:"uses_retargeting"`

	// Mobile app permissions
	RequestsGeolocation       bool `json:"requests_geolocation"`
	RequestsContacts          bool `json:"requests_contacts"`
	RequestsCamera            bool `json:"requests_camera"`
	RequestsPhotoGallery      bool `json:"requests_photo_gallery"`
	RequestsMicrophone        bool `json:"requests_microphone"`
	RequestsPushNotifications bool `json:"requests_push_notifications"`

	// Payment processing
	AcceptsPayments   bool     `json:"accepts_payments"`
	PaymentType       string   `json:"payment_type"`
	PaymentProcessors []string `json:"payment_processors"`

	// Compliance
	GDPRCompliant         bool `json:"gdpr_compliant"`
	CCPACompliant         bool `json:"ccpa_compliant"`
	CalOPPACompliant      bool `json:"caloppa_compliant"`
	COPPACompliant        bool `json:"coppa_compliant"`
	AllowsChildrenUnder13 bool `json:"allows_children_under_13"`

	// Data sharing
	SharesWithThirdParties bool     `json:"shares_with_third_parties"`
	ThirdPartyCategories   []string `json:"third_party_categories"`
	SellsData              bool     `json:"sells_data"`

	// User rights
	AllowsDataAccess      bool `json:"allows_data_access"`
	AllowsDataDeletion    bool `json:"allows_data_deletion"`
	AllowsDataPortability bool `json:"allows_data_portability"`
	AllowsOptOut          bool `json:"allows_opt_out"`

	// Security
	UsesEncryption      bool   `json:"uses_encryption"`
	UsesSSL             bool   `json:"uses_ssl"`
	HasSecurityMeasures bool   `json:"has_security_measures"`
	DataRetentionPeriod string `json:"data_retention_period"`

	// Terms of service
	ServiceDescription  string   `json:"service_description"`
	MinimumAge          int      `json:"minimum_age"`
	RequiresAccount     bool     `json:"requires_account"`
	HasPaidServices     bool     `json:"has_paid_services"`
	HasSubscriptions    bool     `json:"has_subscriptions"`
	HasFreeTrial        bool     `json:"has_free_trial"`
	OffersRefunds       bool     `json:"offers_refunds"`
	RefundPeriod        string   `json:"refund_period"`
	AllowsUserContent   bool     `json:"allows_user_content"`
	UserContentTypes    []string `json:"user_content_types"`
	ModeratesContent    bool     `json:"moderates_content"`
	HasThirdPartyLinks  bool     `json:"has_third_party_links"`
	ProvidesAPI         bool     `json:"provides_api"`
	HasMobileApp        bool     `json:"has_mobile_app"`
	Jurisdiction        string   `json:"jurisdiction"`
	GoverningState      string   `json:"governing_state"`
	HasArbitration      bool     `json:"has_arbitration"`
	DisputeResolution   string   `json:"dispute_resolution"`
	LiabilityCap        string   `json:"liability_cap"`
	DisclaimsWarranties bool     `json:"disclaims_warranties"`

	// Cookie policy
	UsesEssentialCookies   bool     `json:"uses_essential_cookies"`
	UsesFunctionalCookies  bool     `json:"uses_functional_cookies"`
	UsesPerformanceCookies bool     `json:"uses_performance_cookies"`
	UsesAdvertisingCookies bool     `json:"uses_advertising_cookies"`
	UsesSocialCookies      bool     `json:"uses_social_cookies"`
	UsesGoogleAnalytics    bool     `json:"uses_google_analytics"`
	UsesHotjar             bool     `json:"uses_hotjar"`
	UsesMixpanel           bool     `json:"uses_mixpanel"`
	UsesGoogleAds          bool     `json:"uses_google_ads"`
	UsesLinkedInInsight    bool     `json:"uses_linkedin_insight"`
	UsesTwitterPixel       bool     `json:"uses_twitter_pixel"`
	UsesTikTokPixel        bool     `json:"uses_tiktok_pixel"`
	UsesFacebookCookies    bool     `json:"uses_facebook_cookies"`
	UsesTwitterCookies     bool     `json:"uses_twitter_cookies"`
	UsesLinkedInCookies    bool     `json:"uses_linkedin_cookies"`
	UsesInstagramCookies   bool     `json:"uses_instagram_cookies"`
	UsesYouTubeCookies     bool     `json:"uses_youtube_cookies"`
	UsesPinterestCookies   bool     `json:"uses_pinterest_cookies"`
	SocialSharingEnabled   bool     `json:"social_sharing_enabled"`
	UsesHubSpot            bool     `json:"uses_hubspot"`
	UsesIntercom           bool     `json:"uses_intercom"`
	ThirdPartyCookies      []string `json:"third_party_cookies"`
	HasCookieConsent       bool     `json:"has_cookie_consent"`
	HonorsDNT              bool     `json:"honors_dnt"`

	// EULA
	LicenseType           string `json:"license_type"`
	IsTransferable        bool   `json:"is_transferable"`
	IsSubscription        bool   `json:"is_subscription"`
	BillingCycle          string `json:"billing_cycle"`
	AutoRenewal           bool   `json:"auto_renewal"`
	TrialPeriod           string `json:"trial_period"`
	NoReverseEngineering  bool   `json:"no_reverse_engineering"`
	NoModification        bool   `json:"no_modification"`
	NoRedistribution      bool   `json:"no_redistribution"`
	NoCommercialUse       bool   `json:"no_commercial_use"`
	CollectsData          bool   `json:"collects_data"`
	UsesThirdParty        bool   `json:"uses_third_party"`
	HasExportRestrictions bool   `json:"has_export_restrictions"`
	HasWarranty           bool   `json:"has_warranty"`
	WarrantyPeriod        string `json:"warranty_period"`
	EULALiabilityCap      string `json:"eula_liability_cap"`

	// Refund policy
	RefundBusinessType       string `json:"refund_business_type"`
	HasSatisfactionGuarantee bool   `json:"has_satisfaction_guarantee"`
	GuaranteePeriod          string `json:"guarantee_period"`
	RefundPeriodDays         string `json:"refund_period_days"`
	RefundProcessingTime     string `json:"refund_processing_time"`
	ReturnPeriod             string `json:"return_period"`
	RequiresReceipt          bool   `json:"requires_receipt"`
	RequiresOriginalPkg      bool   `json:"requires_original_packaging"`
	OffersExchanges          bool   `json:"offers_exchanges"`
	RestockingFee            string `json:"restocking_fee"`
	ReturnShipping           string `json:"return_shipping"`
	SubscriptionRefunds      string `json:"subscription_refund_policy"`
	OffersProratedRefunds    bool   `json:"offers_prorated_refunds"`
	SaleItemsRefundable      bool   `json:"sale_items_refundable"`
}

// Defaults returns the record every new session starts from.
func Defaults() Config {
	return Config{
		PlatformType: "website",
		BusinessType: "business",

		CollectsName:     true,
		CollectsEmail:    true,
		CollectsUsername: true,
		CollectsPassword: true,

		UsesCookies:  true,
		UsesSessions: true,

		PaymentType:       "one_time",
		PaymentProcessors: []string{},

		ThirdPartyCategories: []string{},

		AllowsDataAccess:   true,
		AllowsDataDeletion: true,
		AllowsOptOut:       true,

		UsesEncryption:      true,
		UsesSSL:             true,
		HasSecurityMeasures: true,

		MinimumAge:          18,
		RequiresAccount:     true,
		UserContentTypes:    []string{},
		DisclaimsWarranties: true,

		UsesEssentialCookies: true,
		ThirdPartyCookies:    []string{},
		HasCookieConsent:     true,

		LicenseType:          "subscription",
		IsSubscription:       true,
		BillingCycle:         "monthly",
		AutoRenewal:          true,
		TrialPeriod:          "14 days",
		NoReverseEngineering: true,
		NoModification:       true,
		NoRedistribution:     true,
		CollectsData:         true,
		UsesThirdParty:       true,

		RefundBusinessType:    "services",
		GuaranteePeriod:       "30 days",
		RefundPeriodDays:      "14 days",
		RefundProcessingTime:  "5-10 business days",
		ReturnPeriod:          "30 days",
		RequiresReceipt:       true,
		RequiresOriginalPkg:   true,
		OffersExchanges:       true,
		ReturnShipping:        "customer",
		SubscriptionRefunds:   "prorated",
		OffersProratedRefunds: true,
		SaleItemsRefundable:   true,
	}
}

// Clone returns a deep copy; list-valued fields do not share backing arrays.
func (c Config) Clone() Config {
	out := c
	out.PaymentProcessors = cloneStrings(c.PaymentProcessors)
	out.ThirdPartyCategories = cloneStrings(c.ThirdPartyCategories)
	out.UserContentTypes = cloneStrings(c.UserContentTypes)
	out.ThirdPartyCookies = cloneStrings(c.ThirdPartyCookies)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Merge overlays the named fields onto the record. Each mentioned field is
// overwritten in place (lists wholesale, never concatenated); fields not
// mentioned keep their current value. Keys that do not name a known field,
// or whose value cannot be decoded into the field's type, are skipped and
// returned so callers can report them. The merge itself never fails.
func (c *Config) Merge(partial map[string]interface{}) []string {
	if len(partial) == 0 {
		return nil
	}
	known := fieldSet()
	keys := make([]string, 0, len(partial))
	for key := range partial {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var ignored []string
	for _, key := range keys {
		if _, ok := known[key]; !ok {
			ignored = append(ignored, key)
			continue
		}
		payload, err := json.Marshal(map[string]interface{}{key: partial[key]})
		if err != nil {
			ignored = append(ignored, key)
			continue
		}
		if err := json.Unmarshal(payload, c); err != nil {
			ignored = append(ignored, key)
		}
	}
	return ignored
}

var (
	fieldSetOnce sync.Once
	fieldNames   []string
	fieldsByName map[string]struct{}
)

func fieldSet() map[string]struct{} {
	fieldSetOnce.Do(func() {
		t := reflect.TypeOf(Config{})
		fieldsByName = make(map[string]struct{}, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			fieldsByName[tag] = struct{}{}
			fieldNames = append(fieldNames, tag)
		}
		sort.Strings(fieldNames)
	})
	return fieldsByName
}

// FieldNames lists every known configuration field name, sorted.
func FieldNames() []string {
	fieldSet()
	return append([]string(nil), fieldNames...)
}

// KnownField reports whether name is part of the configuration record.
func KnownField(name string) bool {
	_, ok := fieldSet()[name]
	return ok
}
