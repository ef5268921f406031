// File path: internal/wizard/steps.go

// Package wizard implements the guided multi-step form: the static step
// tables per document type, the navigation state machine, and the
// controller that coordinates edits, saves, and generation for one
// editing session.
package wizard

import "github.com/lexigen/lexigen/internal/docgen"

// Step is one screen of the guided form. Fields lists the configuration
// field names the step is responsible for collecting; the review step has
// none.
type Step struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

// Steps returns the ordered step list for a document type. The first step
// is always business info and the last is always the fieldless review
// step. Unknown types return nil.
func Steps(docType docgen.DocType) []Step {
	switch docType {
	case docgen.DocPrivacy:
		return cloneSteps(privacySteps)
	case docgen.DocTerms:
		return cloneSteps(termsSteps)
	case docgen.DocCookie:
		return cloneSteps(cookieSteps)
	case docgen.DocEULA:
		return cloneSteps(eulaSteps)
	case docgen.DocRefund:
		return cloneSteps(refundSteps)
	default:
		return nil
	}
}

// cloneSteps deep-copies a step list so callers cannot mutate the shared
// package-level tables through the returned slice.
func cloneSteps(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))
	for i, step := range steps {
		out[i] = step
		if step.Fields != nil {
			out[i].Fields = append([]string(nil), step.Fields...)
		}
	}
	return out
}

var businessStep = Step{
	ID:          "business",
	Title:       "Business Information",
	Description: "Tell us about your company and where it operates.",
	Fields: []string{
		"platform_type", "website_url", "website_name", "app_name",
		"business_type", "company_name", "company_address", "country",
		"effective_date", "contact_email", "contact_phone",
	},
}

var reviewStep = Step{
	ID:          "review",
	Title:       "Review & Generate",
	Description: "Review your answers and generate the document.",
}

var privacySteps = []Step{
	businessStep,
	{
		ID:          "collection",
		Title:       "Data Collection",
		Description: "What personal information do you collect from users?",
		Fields: []string{
			"collects_name", "collects_email", "collects_phone",
			"collects_address", "collects_billing_address", "collects_job_title",
			"collects_payment_info", "collects_age", "collects_username",
			"collects_password",
		},
	},
	{
		ID:          "tracking",
		Title:       "Tracking Technologies",
		Description: "Which tracking technologies does your service use?",
		Fields: []string{
			"uses_cookies", "uses_web_beacons", "uses_local_storage",
			"uses_sessions", "uses_google_maps",
		},
	},
	{
		ID:          "social",
		Title:       "Social Login",
		Description: "Which third-party accounts can users sign in with?",
		Fields: []string{
			"social_login_facebook", "social_login_google", "social_login_twitter",
			"social_login_github", "social_login_linkedin",
		},
	},
	{
		ID:          "marketing",
		Title:       "Marketing & Analytics",
		Description: "How do you market to users and measure engagement?",
		Fields: []string{
			"has_email_newsletter", "uses_analytics", "analytics_provider",
			"displays_ads", "uses_facebook_pixel", "uses_retargeting",
		},
	},
	{
		ID:          "permissions",
		Title:       "App Permissions",
		Description: "Which device features does your app request access to?",
		Fields: []string{
			"requests_geolocation", "requests_contacts", "requests_camera",
			"requests_photo_gallery", "requests_microphone",
			"requests_push_notifications",
		},
	},
	{
		ID:          "payments",
		Title:       "Payments",
		Description: "Do you accept payments, and through whom?",
		Fields:      []string{"accepts_payments", "payment_type", "payment_processors"},
	},
	{
		ID:          "sharing",
		Title:       "Data Sharing",
		Description: "Do you share or sell user data, and with whom?",
		Fields: []string{
			"shares_with_third_parties", "third_party_categories", "sells_data",
			"data_retention_period",
		},
	},
	{
		ID:          "compliance",
		Title:       "Compliance & Rights",
		Description: "Which regulations apply and what rights do users have?",
		Fields: []string{
			"gdpr_compliant", "ccpa_compliant", "caloppa_compliant",
			"coppa_compliant", "allows_children_under_13", "allows_data_access",
			"allows_data_deletion", "allows_data_portability", "allows_opt_out",
			"uses_encryption", "uses_ssl", "has_security_measures", "honors_dnt",
		},
	},
	reviewStep,
}

var termsSteps = []Step{
	businessStep,
	{
		ID:          "service",
		Title:       "Service Details",
		Description: "Describe your service and who may use it.",
		Fields: []string{
			"service_description", "minimum_age", "requires_account",
			"has_third_party_links", "provides_api", "has_mobile_app",
		},
	},
	{
		ID:          "payments",
		Title:       "Paid Services",
		Description: "Do you charge for the service?",
		Fields: []string{
			"has_paid_services", "has_subscriptions", "has_free_trial",
			"offers_refunds", "refund_period",
		},
	},
	{
		ID:          "content",
		Title:       "User Content",
		Description: "Can users post their own content?",
		Fields: []string{
			"allows_user_content", "user_content_types", "moderates_content",
		},
	},
	{
		ID:          "legal",
		Title:       "Legal Terms",
		Description: "Governing law, liability, and dispute handling.",
		Fields: []string{
			"jurisdiction", "governing_state", "has_arbitration",
			"dispute_resolution", "liability_cap", "disclaims_warranties",
		},
	},
	reviewStep,
}

var cookieSteps = []Step{
	businessStep,
	{
		ID:          "types",
		Title:       "Cookie Types",
		Description: "Which categories of cookies does your site set?",
		Fields: []string{
			"uses_essential_cookies", "uses_functional_cookies",
			"uses_performance_cookies", "uses_advertising_cookies",
			"uses_social_cookies", "third_party_cookies",
		},
	},
	{
		ID:          "analytics",
		Title:       "Analytics & Advertising",
		Description: "Which third-party analytics and advertising services do you use?",
		Fields: []string{
			"uses_google_analytics", "uses_hotjar", "uses_mixpanel",
			"uses_hubspot", "uses_intercom", "uses_google_ads",
			"uses_facebook_pixel", "uses_linkedin_insight", "uses_twitter_pixel",
			"uses_tiktok_pixel", "uses_facebook_cookies", "uses_twitter_cookies",
			"uses_linkedin_cookies", "uses_instagram_cookies",
			"uses_youtube_cookies", "uses_pinterest_cookies",
			"social_sharing_enabled",
		},
	},
	{
		ID:          "consent",
		Title:       "Consent",
		Description: "How do you collect cookie consent?",
		Fields:      []string{"has_cookie_consent", "honors_dnt", "gdpr_compliant"},
	},
	reviewStep,
}

var eulaSteps = []Step{
	businessStep,
	{
		ID:          "license",
		Title:       "License Terms",
		Description: "What kind of license do you grant?",
		Fields: []string{
			"license_type", "is_transferable", "is_subscription",
			"billing_cycle", "auto_renewal", "trial_period",
		},
	},
	{
		ID:          "restrictions",
		Title:       "Restrictions",
		Description: "What may licensees not do with the software?",
		Fields: []string{
			"no_reverse_engineering", "no_modification", "no_redistribution",
			"no_commercial_use", "collects_data", "uses_third_party",
			"has_export_restrictions",
		},
	},
	{
		ID:          "warranty",
		Title:       "Warranty & Liability",
		Description: "Warranty coverage and liability limits.",
		Fields: []string{
			"has_warranty", "warranty_period", "eula_liability_cap",
			"jurisdiction",
		},
	},
	reviewStep,
}

var refundSteps = []Step{
	businessStep,
	{
		ID:          "policy",
		Title:       "Refund Policy",
		Description: "What kind of business are refunds for?",
		Fields: []string{
			"refund_business_type", "has_satisfaction_guarantee",
			"guarantee_period", "refund_period_days", "offers_prorated_refunds",
			"sale_items_refundable",
		},
	},
	{
		ID:          "returns",
		Title:       "Returns",
		Description: "Conditions for returning physical products.",
		Fields: []string{
			"return_period", "requires_receipt", "requires_original_packaging",
			"offers_exchanges", "restocking_fee", "return_shipping",
		},
	},
	{
		ID:          "processing",
		Title:       "Processing",
		Description: "How and when refunds are paid out.",
		Fields: []string{
			"refund_processing_time", "subscription_refund_policy",
			"has_subscriptions", "has_free_trial",
		},
	},
	reviewStep,
}
