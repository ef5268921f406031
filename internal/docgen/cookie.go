// File path: internal/docgen/cookie.go
package docgen

import (
	"fmt"
	"strings"
	"time"
)

func renderCookie(cfg Config) string {
	var sections []string
	sections = append(sections, cookieHeader(cfg))
	sections = append(sections, cookieIntroduction(cfg))
	sections = append(sections, cookieExplainer())
	sections = append(sections, cookieTypes(cfg))
	if hasAnalyticsCookies(cfg) {
		sections = append(sections, cookieAnalytics(cfg))
	}
	if hasAdvertisingCookies(cfg) {
		sections = append(sections, cookieAdvertising(cfg))
	}
	if hasSocialCookies(cfg) {
		sections = append(sections, cookieSocial(cfg))
	}
	if len(cfg.ThirdPartyCookies) > 0 {
		sections = append(sections, cookieThirdParty(cfg))
	}
	sections = append(sections, cookieManagement(cfg))
	sections = append(sections, cookieConsent(cfg))
	if cfg.GDPRCompliant {
		sections = append(sections, cookieGDPR())
	}
	sections = append(sections, cookieChanges(cfg))
	sections = append(sections, contactSection(cfg, "Cookie Policy"))
	return joinSections(sections)
}

func hasAnalyticsCookies(cfg Config) bool {
	return cfg.UsesGoogleAnalytics || cfg.UsesHotjar || cfg.UsesMixpanel ||
		cfg.UsesHubSpot || cfg.UsesIntercom
}

func hasAdvertisingCookies(cfg Config) bool {
	return cfg.UsesAdvertisingCookies || cfg.UsesGoogleAds || cfg.UsesFacebookPixel ||
		cfg.UsesLinkedInInsight || cfg.UsesTwitterPixel || cfg.UsesTikTokPixel
}

func hasSocialCookies(cfg Config) bool {
	return cfg.UsesSocialCookies || cfg.UsesFacebookCookies || cfg.UsesTwitterCookies ||
		cfg.UsesLinkedInCookies || cfg.UsesInstagramCookies || cfg.UsesYouTubeCookies ||
		cfg.UsesPinterestCookies || cfg.SocialSharingEnabled
}

func cookieHeader(cfg Config) string {
	return fmt.Sprintf(`# Cookie Policy

**%s**

**Effective Date:** %s

**Last Updated:** %s`, companyName(cfg, "Our Company"), effectiveDate(cfg), time.Now().Format("January 2, 2006"))
}

func cookieIntroduction(cfg Config) string {
	return fmt.Sprintf(`## Introduction

This Cookie Policy explains how %s ("we," "us," or "our") uses cookies and similar technologies on %s. It explains what these technologies are, why we use them, and your rights to control our use of them.`,
		companyName(cfg, "we"), platformText(cfg))
}

func cookieExplainer() string {
	return `## What Are Cookies?

Cookies are small text files that are placed on your device when you visit a website. They are widely used to make websites work, or work more efficiently, as well as to provide information to the site owners.

Cookies set by the website owner are called "first-party cookies." Cookies set by parties other than the website owner are called "third-party cookies." Third-party cookies enable features or functionality provided by outside parties, such as analytics, advertising, and embedded content.

Cookies can also be classified by how long they remain on your device:

- **Session cookies** expire when you close your browser
- **Persistent cookies** remain on your device until they expire or you delete them`
}

func cookieTypes(cfg Config) string {
	var parts []string
	parts = append(parts, "## Cookies We Use")
	if cfg.UsesEssentialCookies {
		parts = append(parts, `### Essential Cookies

These cookies are strictly necessary for the operation of our website. They enable core functionality such as security, session management, and accessibility. You cannot opt out of essential cookies through our consent tools, although you can block them in your browser settings.`)
	}
	if cfg.UsesFunctionalCookies {
		parts = append(parts, `### Functional Cookies

These cookies allow the website to remember choices you make (such as your language or region) and provide enhanced, personalized features.`)
	}
	if cfg.UsesPerformanceCookies {
		parts = append(parts, `### Performance Cookies

These cookies collect information about how visitors use our website, such as which pages are visited most often and whether users encounter error messages. This information is aggregated and helps us improve how the website works.`)
	}
	if cfg.UsesAdvertisingCookies {
		parts = append(parts, `### Advertising Cookies

These cookies are used to deliver advertisements relevant to you and your interests. They also limit the number of times you see an advertisement and help measure the effectiveness of advertising campaigns.`)
	}
	if cfg.UsesSocialCookies {
		parts = append(parts, `### Social Media Cookies

These cookies are set by social media services we have added to the site to enable you to share our content with your networks. They can track your browser across other sites and build a profile of your interests.`)
	}
	if len(parts) == 1 {
		parts = append(parts, "We use cookies only where needed for the operation of our website.")
	}
	return strings.Join(parts, "\n\n")
}

func cookieAnalytics(cfg Config) string {
	var services []string
	if cfg.UsesGoogleAnalytics {
		services = append(services, "**Google Analytics** - measures website traffic and usage patterns")
	}
	if cfg.UsesHotjar {
		services = append(services, "**Hotjar** - records anonymized interactions to help us understand user behavior")
	}
	if cfg.UsesMixpanel {
		services = append(services, "**Mixpanel** - tracks feature usage and product analytics")
	}
	if cfg.UsesHubSpot {
		services = append(services, "**HubSpot** - supports marketing automation and visitor tracking")
	}
	if cfg.UsesIntercom {
		services = append(services, "**Intercom** - powers in-product messaging and support conversations")
	}
	return fmt.Sprintf(`## Analytics Services

We use the following analytics services, which set their own cookies:

%s

These services collect information such as your IP address, browser type, pages visited, and time spent on pages. The data is used in aggregate to improve our website and services.`, bulletList(services))
}

func cookieAdvertising(cfg Config) string {
	var services []string
	if cfg.UsesGoogleAds {
		services = append(services, "**Google Ads** - conversion tracking and remarketing")
	}
	if cfg.UsesFacebookPixel {
		services = append(services, "**Facebook Pixel** - ad measurement and audience building")
	}
	if cfg.UsesLinkedInInsight {
		services = append(services, "**LinkedIn Insight Tag** - campaign reporting and website demographics")
	}
	if cfg.UsesTwitterPixel {
		services = append(services, "**Twitter/X Pixel** - conversion tracking for advertising")
	}
	if cfg.UsesTikTokPixel {
		services = append(services, "**TikTok Pixel** - ad performance measurement")
	}
	list := bulletList(services)
	if list == "" {
		list = "- Third-party advertising networks that serve ads on our behalf"
	}
	return fmt.Sprintf(`## Advertising Cookies

We work with advertising partners that may set cookies on your device:

%s

You can opt out of interest-based advertising through industry opt-out pages such as the Digital Advertising Alliance (optout.aboutads.info) or the Network Advertising Initiative (optout.networkadvertising.org).`, list)
}

func cookieSocial(cfg Config) string {
	var platforms []string
	if cfg.UsesFacebookCookies {
		platforms = append(platforms, "Facebook")
	}
	if cfg.UsesTwitterCookies {
		platforms = append(platforms, "Twitter/X")
	}
	if cfg.UsesLinkedInCookies {
		platforms = append(platforms, "LinkedIn")
	}
	if cfg.UsesInstagramCookies {
		platforms = append(platforms, "Instagram")
	}
	if cfg.UsesYouTubeCookies {
		platforms = append(platforms, "YouTube")
	}
	if cfg.UsesPinterestCookies {
		platforms = append(platforms, "Pinterest")
	}
	list := bulletList(platforms)
	if list == "" {
		list = "- Social platforms whose sharing features are embedded on our pages"
	}
	sharing := ""
	if cfg.SocialSharingEnabled {
		sharing = "\n\nOur pages include social sharing buttons. When you use them, the corresponding platform may set cookies and collect information about your visit, even if you do not have an account with that platform."
	}
	return fmt.Sprintf(`## Social Media Cookies

The following social platforms may set cookies through content embedded on our website:

%s

These cookies are governed by the privacy policies of the respective platforms.%s`, list, sharing)
}

func cookieThirdParty(cfg Config) string {
	return fmt.Sprintf(`## Other Third-Party Cookies

In addition to the services listed above, the following third parties may set cookies on our website:

%s

We do not control these cookies. Please review the privacy and cookie policies of these parties for more information.`,
		bulletList(cfg.ThirdPartyCookies))
}

func cookieManagement(cfg Config) string {
	return `## Managing Cookies

Most web browsers allow you to control cookies through their settings. You can:

- Delete existing cookies from your device
- Block all cookies or only third-party cookies
- Configure your browser to notify you before a cookie is set

Instructions for managing cookies in popular browsers:

- **Chrome:** Settings > Privacy and security > Cookies and other site data
- **Firefox:** Settings > Privacy & Security > Cookies and Site Data
- **Safari:** Preferences > Privacy > Manage Website Data
- **Edge:** Settings > Cookies and site permissions

Please note that blocking some types of cookies may impact your experience on our website and the services we are able to offer.`
}

func cookieConsent(cfg Config) string {
	if cfg.HasCookieConsent {
		return `## Your Consent

When you first visit our website, we present a cookie consent banner that allows you to accept or decline non-essential cookies. You can change your preferences at any time through the cookie settings link on our website. Essential cookies do not require consent because the website cannot function without them.`
	}
	return `## Your Consent

By continuing to use our website, you consent to our use of cookies as described in this policy. If you do not agree, please adjust your browser settings to block cookies or discontinue use of the website.`
}

func cookieGDPR() string {
	return `## European Users

If you are located in the European Economic Area, we process cookie data on the basis of your consent, except for essential cookies, which we process on the basis of our legitimate interest in operating the website. You have the right to withdraw your consent at any time, to access the personal data we hold about you, and to lodge a complaint with your local data protection authority.`
}

func cookieChanges(cfg Config) string {
	return `## Changes to This Cookie Policy

We may update this Cookie Policy from time to time to reflect changes to the cookies we use or for operational, legal, or regulatory reasons. Please revisit this policy regularly to stay informed about our use of cookies. The date at the top of this policy indicates when it was last updated.`
}
