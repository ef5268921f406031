// File path: internal/docgen/privacy.go
package docgen

import (
	"fmt"
	"strings"
	"time"
)

func renderPrivacy(cfg Config) string {
	var sections []string
	sections = append(sections, privacyHeader(cfg))
	sections = append(sections, privacyIntroduction(cfg))
	sections = append(sections, privacyCollection(cfg))
	if usesTracking(cfg) {
		sections = append(sections, privacyTracking(cfg))
	}
	if usesSocialLogin(cfg) {
		sections = append(sections, privacySocialLogin(cfg))
	}
	sections = append(sections, privacyUseOfInformation(cfg))
	if hasMarketing(cfg) {
		sections = append(sections, privacyMarketing(cfg))
	}
	if (cfg.PlatformType == "app" || cfg.PlatformType == "both") && hasAppPermissions(cfg) {
		sections = append(sections, privacyAppPermissions(cfg))
	}
	if cfg.AcceptsPayments {
		sections = append(sections, privacyPayments(cfg))
	}
	sections = append(sections, privacyDataSharing(cfg))
	sections = append(sections, privacyRetention(cfg))
	sections = append(sections, privacySecurity(cfg))
	sections = append(sections, privacyUserRights(cfg))
	sections = append(sections, privacyChildren(cfg))
	if cfg.GDPRCompliant {
		sections = append(sections, privacyGDPR(cfg))
	}
	if cfg.CCPACompliant {
		sections = append(sections, privacyCCPA(cfg))
	}
	if cfg.CalOPPACompliant {
		sections = append(sections, privacyCalOPPA(cfg))
	}
	sections = append(sections, privacyUpdates(cfg))
	sections = append(sections, contactSection(cfg, "Privacy Policy"))
	return joinSections(sections)
}

func usesTracking(cfg Config) bool {
	return cfg.UsesCookies || cfg.UsesWebBeacons || cfg.UsesLocalStorage ||
		cfg.UsesSessions || cfg.UsesGoogleMaps
}

func usesSocialLogin(cfg Config) bool {
	return cfg.SocialLoginFacebook || cfg.SocialLoginGoogle || cfg.SocialLoginTwitter ||
		cfg.SocialLoginGitHub || cfg.SocialLoginLinkedIn
}

func hasMarketing(cfg Config) bool {
	return cfg.HasEmailNewsletter || cfg.UsesAnalytics || cfg.DisplaysAds ||
		cfg.UsesFacebookPixel || cfg.UsesRetargeting
}

func hasAppPermissions(cfg Config) bool {
	return cfg.RequestsGeolocation || cfg.RequestsContacts || cfg.RequestsCamera ||
		cfg.RequestsPhotoGallery || cfg.RequestsMicrophone || cfg.RequestsPushNotifications
}

func privacyHeader(cfg Config) string {
	return fmt.Sprintf(`# Privacy Policy

**%s**

**Effective Date:** %s

**Last Updated:** %s`, companyName(cfg, "Our Company"), effectiveDate(cfg), time.Now().Format("January 2, 2006"))
}

func privacyIntroduction(cfg Config) string {
	company := cfg.CompanyName
	if company == "" {
		company = "We"
	}
	service := serviceType(cfg)
	return fmt.Sprintf(`## Introduction

%s ("we," "us," or "our") operates %s. This Privacy Policy explains how we collect, use, disclose, and safeguard your information when you visit our %s.

Please read this Privacy Policy carefully. If you do not agree with the terms of this Privacy Policy, please do not access the %s.

We reserve the right to make changes to this Privacy Policy at any time and for any reason. We will alert you about any changes by updating the "Last Updated" date of this Privacy Policy.`,
		company, platformText(cfg), service, service)
}

func privacyCollection(cfg Config) string {
	var personal []string
	if cfg.CollectsName {
		personal = append(personal, "Name and username")
	}
	if cfg.CollectsEmail {
		personal = append(personal, "Email address")
	}
	if cfg.CollectsPhone {
		personal = append(personal, "Phone number")
	}
	if cfg.CollectsAddress {
		personal = append(personal, "Mailing address")
	}
	if cfg.CollectsBillingAddress {
		personal = append(personal, "Billing address")
	}
	if cfg.CollectsJobTitle {
		personal = append(personal, "Job title and employer information")
	}
	if cfg.CollectsPaymentInfo {
		personal = append(personal, "Payment information (credit card numbers, billing details)")
	}
	if cfg.CollectsAge {
		personal = append(personal, "Age and date of birth")
	}
	if cfg.CollectsPassword {
		personal = append(personal, "Account credentials (passwords are encrypted)")
	}
	if cfg.CollectsUsername {
		personal = append(personal, "Username")
	}
	list := bulletList(personal)
	if list == "" {
		list = "- Basic contact information as needed"
	}
	service := serviceType(cfg)
	return fmt.Sprintf(`## Information We Collect

### Personal Data

We may collect personally identifiable information that you voluntarily provide to us when you:
- Register on our %s
- Express interest in obtaining information about us or our products
- Participate in activities on our %s
- Contact us

The personal information we collect may include:

%s

### Automatically Collected Information

When you access our %s, we may automatically collect certain information, including:
- Your IP address
- Browser type and version
- Operating system
- Access times and dates
- Pages viewed and links clicked`, service, service, list, service)
}

func privacyTracking(cfg Config) string {
	service := serviceType(cfg)
	var parts []string
	if cfg.UsesCookies {
		parts = append(parts, fmt.Sprintf(`### Cookies

We use cookies and similar tracking technologies to track activity on our %s and hold certain information. You can instruct your browser to refuse all cookies or to indicate when a cookie is being sent; however, if you do not accept cookies, you may not be able to use some portions of our %s.`, service, service))
	}
	if cfg.UsesWebBeacons {
		parts = append(parts, fmt.Sprintf(`### Web Beacons

We may use web beacons (also known as pixel tags or clear GIFs) to track user activity and gather usage data on our %s.`, service))
	}
	if cfg.UsesLocalStorage {
		parts = append(parts, `### Local Storage

We use local storage technologies (such as HTML5 local storage) to store content information and preferences. These are similar to cookies but can store larger amounts of data.`)
	}
	if cfg.UsesSessions {
		parts = append(parts, fmt.Sprintf(`### Session Data

We use session cookies and tokens to maintain your session while you use our %s. These are temporary and are deleted when you close your browser or log out.`, service))
	}
	if cfg.UsesGoogleMaps {
		parts = append(parts, `### Google Maps API

We may use Google Maps API to provide location-based features. This means Google may collect certain information about your device and location. Please refer to Google's Privacy Policy for more information.`)
	}
	return "## Tracking Technologies\n\n" + strings.Join(parts, "\n\n")
}

func privacySocialLogin(cfg Config) string {
	var providers []string
	if cfg.SocialLoginFacebook {
		providers = append(providers, "Facebook")
	}
	if cfg.SocialLoginGoogle {
		providers = append(providers, "Google")
	}
	if cfg.SocialLoginTwitter {
		providers = append(providers, "Twitter/X")
	}
	if cfg.SocialLoginGitHub {
		providers = append(providers, "GitHub")
	}
	if cfg.SocialLoginLinkedIn {
		providers = append(providers, "LinkedIn")
	}
	return fmt.Sprintf(`## Social Media Login

You may register or log in using the following third-party accounts:

%s

When you log in through a social provider, we may receive profile information such as your name, email address, and profile picture, in accordance with that provider's privacy policy and your privacy settings on that platform.`,
		bulletList(providers))
}

func privacyUseOfInformation(cfg Config) string {
	return fmt.Sprintf(`## How We Use Your Information

We use the information we collect to:
- Provide, operate, and maintain our %s
- Create and manage your account
- Respond to your comments, questions, and requests
- Send administrative information such as updates and security alerts
- Monitor and analyze usage and trends to improve your experience
- Detect, prevent, and address technical issues and fraudulent activity
- Comply with legal obligations`, serviceType(cfg))
}

func privacyMarketing(cfg Config) string {
	var parts []string
	if cfg.HasEmailNewsletter {
		parts = append(parts, `### Email Newsletter

If you subscribe to our newsletter, we use your email address to send periodic updates. You can unsubscribe at any time using the link in any newsletter email.`)
	}
	if cfg.UsesAnalytics {
		provider := cfg.AnalyticsProvider
		if provider == "" {
			provider = "third-party analytics services"
		}
		parts = append(parts, fmt.Sprintf(`### Analytics

We use %s to understand how visitors interact with our %s. These services may collect information such as your IP address, browser type, and pages visited.`, provider, serviceType(cfg)))
	}
	if cfg.DisplaysAds {
		parts = append(parts, `### Advertising

We display advertisements that may be tailored to your interests. Advertising partners may use cookies and similar technologies to collect information about your activities.`)
	}
	if cfg.UsesFacebookPixel {
		parts = append(parts, `### Facebook Pixel

We use the Facebook Pixel to measure the effectiveness of our advertising and to build audiences for future campaigns.`)
	}
	if cfg.UsesRetargeting {
		parts = append(parts, `### Retargeting

We use retargeting services to advertise to you on third-party websites after you have visited our service.`)
	}
	return "## Marketing and Advertising\n\n" + strings.Join(parts, "\n\n")
}

func privacyAppPermissions(cfg Config) string {
	var perms []string
	if cfg.RequestsGeolocation {
		perms = append(perms, "**Location** - to provide location-based features")
	}
	if cfg.RequestsContacts {
		perms = append(perms, "**Contacts** - to help you connect with people you know")
	}
	if cfg.RequestsCamera {
		perms = append(perms, "**Camera** - to capture photos and videos within the app")
	}
	if cfg.RequestsPhotoGallery {
		perms = append(perms, "**Photo Gallery** - to upload images from your device")
	}
	if cfg.RequestsMicrophone {
		perms = append(perms, "**Microphone** - to record audio within the app")
	}
	if cfg.RequestsPushNotifications {
		perms = append(perms, "**Push Notifications** - to send you alerts and updates")
	}
	return fmt.Sprintf(`## Mobile Application Permissions

Our mobile application may request access to the following device features:

%s

You can manage these permissions through your device settings at any time. Declining a permission may limit certain app features.`, bulletList(perms))
}

func privacyPayments(cfg Config) string {
	processors := "trusted third-party payment processors"
	if len(cfg.PaymentProcessors) > 0 {
		processors = strings.Join(cfg.PaymentProcessors, ", ")
	}
	return fmt.Sprintf(`## Payment Processing

We may provide paid products and/or services. Payment processing is handled by %s. We do not store your full payment card details on our servers; payment data is processed directly by our payment processors, whose use of your personal information is governed by their own privacy policies.`, processors)
}

func privacyDataSharing(cfg Config) string {
	var parts []string
	parts = append(parts, `## Data Sharing and Disclosure

We may share your information in the following situations:
- **Legal requirements:** when required by law, court order, or governmental authority
- **Business transfers:** in connection with a merger, acquisition, or sale of assets
- **Protection:** to protect the rights, property, or safety of our users or others`)
	if cfg.SharesWithThirdParties {
		categories := "service providers that support our operations"
		if len(cfg.ThirdPartyCategories) > 0 {
			categories = strings.Join(cfg.ThirdPartyCategories, ", ")
		}
		parts = append(parts, fmt.Sprintf(`We share information with the following categories of third parties: %s. These parties are contractually obligated to use your information only for the services they provide to us.`, categories))
	}
	if cfg.SellsData {
		parts = append(parts, `We may sell certain categories of personal information to third parties. You have the right to opt out of the sale of your personal information; see the "Your Rights" section below.`)
	} else {
		parts = append(parts, `We do not sell your personal information.`)
	}
	return strings.Join(parts, "\n\n")
}

func privacyRetention(cfg Config) string {
	retention := "only for as long as necessary for the purposes set out in this Privacy Policy"
	if cfg.DataRetentionPeriod != "" {
		retention = "for " + cfg.DataRetentionPeriod
	}
	return fmt.Sprintf(`## Data Retention

We retain your personal information %s. When your information is no longer required, we will delete or anonymize it. We may retain certain information where required by law or for legitimate business purposes such as fraud prevention.`, retention)
}

func privacySecurity(cfg Config) string {
	var measures []string
	if cfg.UsesEncryption {
		measures = append(measures, "Encryption of sensitive data at rest and in transit")
	}
	if cfg.UsesSSL {
		measures = append(measures, "SSL/TLS encryption for all data transmitted to and from our servers")
	}
	if cfg.HasSecurityMeasures {
		measures = append(measures, "Administrative, technical, and physical safeguards appropriate to the nature of the data")
	}
	list := bulletList(measures)
	if list == "" {
		list = "- Commercially reasonable safeguards for the information we process"
	}
	return fmt.Sprintf(`## Data Security

We implement security measures designed to protect your personal information:

%s

While we strive to protect your personal information, no method of transmission over the Internet or electronic storage is 100%% secure, and we cannot guarantee absolute security.`, list)
}

func privacyUserRights(cfg Config) string {
	var rights []string
	if cfg.AllowsDataAccess {
		rights = append(rights, "**Access** - request a copy of the personal information we hold about you")
	}
	if cfg.AllowsDataDeletion {
		rights = append(rights, "**Deletion** - request that we delete your personal information")
	}
	if cfg.AllowsDataPortability {
		rights = append(rights, "**Portability** - receive your personal information in a structured, machine-readable format")
	}
	if cfg.AllowsOptOut {
		rights = append(rights, "**Opt-out** - opt out of marketing communications and certain data processing")
	}
	list := bulletList(rights)
	if list == "" {
		list = "- Contact us to discuss the choices available for your personal information"
	}
	return fmt.Sprintf(`## Your Rights

Depending on your location, you may have the following rights regarding your personal information:

%s

To exercise any of these rights, please contact us using the details in the "Contact Us" section. We will respond to verified requests within the timeframe required by applicable law.`, list)
}

func privacyChildren(cfg Config) string {
	if cfg.AllowsChildrenUnder13 {
		return `## Children's Privacy

Our service is available to children under 13 with verifiable parental consent. We collect only the information reasonably necessary to provide the service, and parents may review, delete, or refuse further collection of their child's information by contacting us.`
	}
	return `## Children's Privacy

Our service is not directed to children under the age of 13, and we do not knowingly collect personal information from children under 13. If we learn that we have collected personal information from a child under 13, we will delete that information promptly. If you believe a child has provided us with personal information, please contact us.`
}

func privacyGDPR(cfg Config) string {
	return `## GDPR Compliance (European Users)

If you are located in the European Economic Area (EEA), you have rights under the General Data Protection Regulation (GDPR):

- The right to access, update, or delete your personal information
- The right of rectification
- The right to object to processing
- The right of restriction
- The right to data portability
- The right to withdraw consent

We process your personal data only where we have a legal basis to do so: your consent, the performance of a contract with you, compliance with a legal obligation, or our legitimate interests. You also have the right to lodge a complaint with your local data protection authority.`
}

func privacyCCPA(cfg Config) string {
	sale := "We do not sell personal information as defined by the CCPA."
	if cfg.SellsData {
		sale = `You have the right to opt out of the sale of your personal information. To exercise this right, contact us using the details below.`
	}
	return fmt.Sprintf(`## California Privacy Rights (CCPA)

If you are a California resident, the California Consumer Privacy Act (CCPA) provides you with specific rights:

- **Right to know** - what personal information we collect, use, and disclose
- **Right to delete** - request deletion of your personal information
- **Right to non-discrimination** - we will not discriminate against you for exercising your rights

%s`, sale)
}

func privacyCalOPPA(cfg Config) string {
	dnt := "We do not currently respond to Do Not Track browser signals."
	if cfg.HonorsDNT {
		dnt = "We honor Do Not Track browser signals and do not track users who have enabled them."
	}
	return fmt.Sprintf(`## CalOPPA Disclosure

In accordance with the California Online Privacy Protection Act (CalOPPA):

- Users can visit our service anonymously
- This Privacy Policy is linked from our home page
- Users will be notified of privacy policy changes on this page
- %s`, dnt)
}

func privacyUpdates(cfg Config) string {
	return fmt.Sprintf(`## Changes to This Privacy Policy

We may update our Privacy Policy from time to time. We will notify you of any changes by posting the new Privacy Policy on this page and updating the "Last Updated" date. Your continued use of our %s after any modifications constitutes your acceptance of those changes.`, serviceType(cfg))
}
