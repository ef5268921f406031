// File path: internal/docgen/tos.go
package docgen

import (
	"fmt"
	"strings"
	"time"
)

func renderTerms(cfg Config) string {
	var sections []string
	sections = append(sections, termsHeader(cfg))
	sections = append(sections, termsAgreement(cfg))
	sections = append(sections, termsDefinitions(cfg))
	if cfg.RequiresAccount {
		sections = append(sections, termsAccounts(cfg))
	}
	if cfg.HasPaidServices {
		sections = append(sections, termsPayments(cfg))
	}
	if cfg.AllowsUserContent {
		sections = append(sections, termsUserContent(cfg))
	}
	sections = append(sections, termsAcceptableUse(cfg))
	sections = append(sections, termsIntellectualProperty(cfg))
	if cfg.HasThirdPartyLinks {
		sections = append(sections, termsThirdPartyLinks(cfg))
	}
	if cfg.ProvidesAPI {
		sections = append(sections, termsAPI(cfg))
	}
	sections = append(sections, termsDisclaimers(cfg))
	sections = append(sections, termsLiability(cfg))
	sections = append(sections, termsIndemnification(cfg))
	sections = append(sections, termsTermination(cfg))
	sections = append(sections, termsGoverningLaw(cfg))
	if cfg.HasArbitration || cfg.DisputeResolution != "" {
		sections = append(sections, termsDisputes(cfg))
	}
	sections = append(sections, termsChanges(cfg))
	sections = append(sections, termsSeverability(cfg))
	sections = append(sections, contactSection(cfg, "Terms of Service"))
	return joinSections(sections)
}

func termsHeader(cfg Config) string {
	return fmt.Sprintf(`# Terms of Service

**%s**

**Effective Date:** %s

**Last Updated:** %s`, companyName(cfg, "Our Company"), effectiveDate(cfg), time.Now().Format("January 2, 2006"))
}

func termsAgreement(cfg Config) string {
	service := serviceType(cfg)
	age := ""
	if cfg.MinimumAge > 0 {
		age = fmt.Sprintf("\n\nYou must be at least %d years old to use the Service. By using the Service, you represent and warrant that you meet this age requirement.", cfg.MinimumAge)
	}
	return fmt.Sprintf(`## Agreement to Terms

These Terms of Service ("Terms") constitute a legally binding agreement between you and %s ("we," "us," or "our") governing your access to and use of %s (the "Service").

By accessing or using our %s, you agree to be bound by these Terms. If you disagree with any part of these Terms, you may not access the Service.%s`,
		companyName(cfg, "us"), platformText(cfg), service, age)
}

func termsDefinitions(cfg Config) string {
	description := cfg.ServiceDescription
	if description == "" {
		description = "the services, features, and content we make available"
	}
	return fmt.Sprintf(`## Definitions

- **"Service"** refers to %s, including %s.
- **"User," "you," and "your"** refer to the individual or entity accessing the Service.
- **"Content"** refers to text, images, audio, video, and other material available through the Service.
- **"User Content"** refers to Content that users submit, post, or transmit through the Service.`,
		platformText(cfg), description)
}

func termsAccounts(cfg Config) string {
	return `## User Accounts

To access certain features of the Service, you must register for an account. When you create an account, you agree to:

- Provide accurate, current, and complete information
- Maintain and promptly update your account information
- Keep your password secure and confidential
- Notify us immediately of any unauthorized use of your account
- Accept responsibility for all activities that occur under your account

We reserve the right to suspend or terminate accounts that contain false information or that are used in violation of these Terms. You may not transfer your account to another person without our prior written consent.`
}

func termsPayments(cfg Config) string {
	var parts []string
	parts = append(parts, `## Payment Terms

Certain features of the Service require payment. By purchasing a paid feature, you agree to pay all applicable fees as described at the time of purchase. All fees are stated in the applicable currency and are non-refundable except as described below or required by law.`)
	if cfg.HasSubscriptions {
		parts = append(parts, `### Subscriptions

Some parts of the Service are billed on a subscription basis. Your subscription will automatically renew at the end of each billing period unless you cancel before the renewal date. You can cancel your subscription through your account settings or by contacting us. Cancellation takes effect at the end of the current billing period.`)
	}
	if cfg.HasFreeTrial {
		parts = append(parts, `### Free Trials

We may offer free trials of paid features. At the end of a trial period, your account will be charged for the applicable subscription unless you cancel before the trial ends. We reserve the right to modify or terminate free trial offers at any time.`)
	}
	if cfg.OffersRefunds {
		period := cfg.RefundPeriod
		if period == "" {
			period = "30 days"
		}
		parts = append(parts, fmt.Sprintf(`### Refunds

We offer refunds within %s of purchase. To request a refund, contact us with your order details. Refunds are issued to the original payment method.`, period))
	}
	return strings.Join(parts, "\n\n")
}

func termsUserContent(cfg Config) string {
	types := "content"
	if len(cfg.UserContentTypes) > 0 {
		types = strings.Join(cfg.UserContentTypes, ", ")
	}
	moderation := ""
	if cfg.ModeratesContent {
		moderation = "\n\nWe reserve the right, but have no obligation, to monitor, review, and remove User Content at our sole discretion, without notice, for any reason."
	}
	return fmt.Sprintf(`## User Content

The Service allows you to submit %s ("User Content"). You retain ownership of your User Content. By submitting User Content, you grant us a worldwide, non-exclusive, royalty-free license to use, reproduce, modify, display, and distribute your User Content in connection with operating and promoting the Service.

You represent and warrant that:
- You own or have the necessary rights to your User Content
- Your User Content does not infringe the rights of any third party
- Your User Content complies with these Terms and applicable law%s`, types, moderation)
}

func termsAcceptableUse(cfg Config) string {
	return `## Acceptable Use

You agree not to use the Service to:

- Violate any applicable law or regulation
- Infringe the intellectual property rights of others
- Transmit viruses, malware, or other harmful code
- Harass, abuse, threaten, or intimidate other users
- Impersonate any person or entity
- Collect or harvest information about other users without consent
- Interfere with or disrupt the Service or its servers
- Attempt to gain unauthorized access to any part of the Service
- Use automated systems to access the Service in a manner that sends more requests than a human could reasonably produce

We reserve the right to investigate violations and to involve law enforcement where appropriate.`
}

func termsIntellectualProperty(cfg Config) string {
	return fmt.Sprintf(`## Intellectual Property

The Service and its original content (excluding User Content), features, and functionality are and will remain the exclusive property of %s and its licensors. The Service is protected by copyright, trademark, and other laws. Our trademarks may not be used in connection with any product or service without our prior written consent.`,
		companyName(cfg, "the Company"))
}

func termsThirdPartyLinks(cfg Config) string {
	return `## Third-Party Links and Services

The Service may contain links to third-party websites or services that are not owned or controlled by us. We have no control over, and assume no responsibility for, the content, privacy policies, or practices of any third-party websites or services. You acknowledge and agree that we shall not be liable for any damage or loss caused by your use of any third-party website or service.`
}

func termsAPI(cfg Config) string {
	return `## API Terms

We may provide access to an application programming interface ("API"). Your use of the API is subject to these Terms and any additional API documentation we publish. We may set and enforce limits on your use of the API, such as rate limits, at our discretion. We may suspend or terminate your API access at any time if we believe your use violates these Terms or harms the Service.`
}

func termsDisclaimers(cfg Config) string {
	if !cfg.DisclaimsWarranties {
		return `## Disclaimers

The Service is provided on an "AS IS" and "AS AVAILABLE" basis. We do not guarantee that the Service will be uninterrupted, secure, or error-free.`
	}
	return `## Disclaimers

THE SERVICE IS PROVIDED ON AN "AS IS" AND "AS AVAILABLE" BASIS, WITHOUT WARRANTIES OF ANY KIND, EITHER EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO IMPLIED WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, AND NON-INFRINGEMENT.

WE DO NOT WARRANT THAT:
- THE SERVICE WILL BE UNINTERRUPTED, TIMELY, SECURE, OR ERROR-FREE
- THE RESULTS OBTAINED FROM USE OF THE SERVICE WILL BE ACCURATE OR RELIABLE
- ANY ERRORS IN THE SERVICE WILL BE CORRECTED`
}

func termsLiability(cfg Config) string {
	cap := "THE AMOUNT YOU PAID US, IF ANY, IN THE TWELVE (12) MONTHS PRECEDING THE CLAIM"
	if cfg.LiabilityCap != "" {
		cap = strings.ToUpper(cfg.LiabilityCap)
	}
	return fmt.Sprintf(`## Limitation of Liability

TO THE MAXIMUM EXTENT PERMITTED BY APPLICABLE LAW, IN NO EVENT SHALL %s, ITS DIRECTORS, EMPLOYEES, PARTNERS, AGENTS, SUPPLIERS, OR AFFILIATES BE LIABLE FOR ANY INDIRECT, INCIDENTAL, SPECIAL, CONSEQUENTIAL, OR PUNITIVE DAMAGES, INCLUDING LOSS OF PROFITS, DATA, USE, OR GOODWILL, ARISING OUT OF OR IN CONNECTION WITH YOUR USE OF THE SERVICE.

OUR TOTAL LIABILITY FOR ANY CLAIM ARISING OUT OF OR RELATING TO THESE TERMS OR THE SERVICE SHALL NOT EXCEED %s.`,
		strings.ToUpper(companyName(cfg, "the Company")), cap)
}

func termsIndemnification(cfg Config) string {
	return fmt.Sprintf(`## Indemnification

You agree to defend, indemnify, and hold harmless %s and its officers, directors, employees, and agents from and against any claims, liabilities, damages, losses, and expenses, including reasonable attorneys' fees, arising out of or in any way connected with your access to or use of the Service, your User Content, or your violation of these Terms.`,
		companyName(cfg, "the Company"))
}

func termsTermination(cfg Config) string {
	return `## Termination

We may suspend or terminate your access to the Service immediately, without prior notice or liability, for any reason, including if you breach these Terms. Upon termination, your right to use the Service will cease immediately. You may stop using the Service and, where applicable, delete your account at any time.

Provisions of these Terms that by their nature should survive termination shall survive, including ownership provisions, warranty disclaimers, indemnity, and limitations of liability.`
}

func termsGoverningLaw(cfg Config) string {
	jurisdiction := cfg.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = cfg.Country
	}
	if cfg.GoverningState != "" {
		if jurisdiction != "" {
			jurisdiction = cfg.GoverningState + ", " + jurisdiction
		} else {
			jurisdiction = cfg.GoverningState
		}
	}
	if jurisdiction == "" {
		jurisdiction = "the jurisdiction in which we are established"
	}
	return fmt.Sprintf(`## Governing Law

These Terms shall be governed by and construed in accordance with the laws of %s, without regard to its conflict of law provisions. Our failure to enforce any right or provision of these Terms will not be considered a waiver of those rights.`, jurisdiction)
}

func termsDisputes(cfg Config) string {
	if cfg.HasArbitration {
		return `## Dispute Resolution

Any dispute arising out of or relating to these Terms or the Service shall be resolved through binding arbitration, rather than in court, except that you may assert claims in small claims court if your claims qualify. The arbitration shall be conducted by a single arbitrator on an individual basis.

YOU AND WE AGREE THAT EACH PARTY MAY BRING CLAIMS AGAINST THE OTHER ONLY IN AN INDIVIDUAL CAPACITY AND NOT AS A PLAINTIFF OR CLASS MEMBER IN ANY PURPORTED CLASS OR REPRESENTATIVE PROCEEDING.`
	}
	return fmt.Sprintf(`## Dispute Resolution

Any dispute arising out of or relating to these Terms or the Service shall be resolved through %s. Before initiating any formal proceeding, you agree to first contact us and attempt to resolve the dispute informally.`,
		cfg.DisputeResolution)
}

func termsChanges(cfg Config) string {
	return `## Changes to These Terms

We reserve the right to modify or replace these Terms at any time. If a revision is material, we will provide at least 30 days' notice before the new terms take effect. What constitutes a material change will be determined at our sole discretion. By continuing to access or use the Service after revisions become effective, you agree to be bound by the revised Terms.`
}

func termsSeverability(cfg Config) string {
	return `## Severability

If any provision of these Terms is held to be invalid or unenforceable, that provision will be enforced to the maximum extent permissible, and the remaining provisions will remain in full force and effect. These Terms constitute the entire agreement between you and us regarding the Service and supersede any prior agreements.`
}
