// File path: internal/docgen/eula.go
package docgen

import (
	"fmt"
	"strings"
	"time"
)

func renderEULA(cfg Config) string {
	var sections []string
	sections = append(sections, eulaHeader(cfg))
	sections = append(sections, eulaIntroduction(cfg))
	sections = append(sections, eulaLicenseGrant(cfg))
	if cfg.IsSubscription || cfg.LicenseType == "subscription" {
		sections = append(sections, eulaSubscription(cfg))
	}
	sections = append(sections, eulaRestrictions(cfg))
	sections = append(sections, eulaOwnership(cfg))
	if cfg.CollectsData {
		sections = append(sections, eulaDataCollection(cfg))
	}
	if cfg.UsesThirdParty {
		sections = append(sections, eulaThirdPartyComponents(cfg))
	}
	sections = append(sections, eulaUpdates(cfg))
	sections = append(sections, eulaWarranty(cfg))
	sections = append(sections, eulaLiability(cfg))
	sections = append(sections, eulaTermination(cfg))
	if cfg.HasExportRestrictions {
		sections = append(sections, eulaExport(cfg))
	}
	sections = append(sections, eulaGoverningLaw(cfg))
	sections = append(sections, contactSection(cfg, "End User License Agreement"))
	return joinSections(sections)
}

func eulaProductName(cfg Config) string {
	if cfg.AppName != "" {
		return cfg.AppName
	}
	return "the Software"
}

func eulaHeader(cfg Config) string {
	return fmt.Sprintf(`# End User License Agreement

**%s**

**Effective Date:** %s

**Last Updated:** %s`, companyName(cfg, "Our Company"), effectiveDate(cfg), time.Now().Format("January 2, 2006"))
}

func eulaIntroduction(cfg Config) string {
	return fmt.Sprintf(`## Introduction

This End User License Agreement ("Agreement") is a legal agreement between you and %s ("Licensor," "we," "us," or "our") for the use of %s (the "Software").

By installing, copying, or otherwise using the Software, you agree to be bound by the terms of this Agreement. If you do not agree to the terms of this Agreement, do not install or use the Software.`,
		companyName(cfg, "the Licensor"), eulaProductName(cfg))
}

func eulaLicenseGrant(cfg Config) string {
	var grant string
	switch cfg.LicenseType {
	case "perpetual":
		grant = "a perpetual, non-exclusive, non-sublicensable license"
	case "subscription":
		grant = "a limited, non-exclusive, non-sublicensable, subscription-based license"
	default:
		grant = "a limited, non-exclusive, non-sublicensable license"
	}
	transfer := "This license is personal to you and may not be transferred or assigned to any other person or entity."
	if cfg.IsTransferable {
		transfer = "You may transfer this license to another person, provided you transfer all copies of the Software and the transferee agrees to the terms of this Agreement."
	}
	return fmt.Sprintf(`## License Grant

Subject to the terms of this Agreement, we grant you %s to install and use the Software for your personal or internal business purposes.

%s`, grant, transfer)
}

func eulaSubscription(cfg Config) string {
	cycle := cfg.BillingCycle
	if cycle == "" {
		cycle = "recurring"
	}
	var parts []string
	parts = append(parts, fmt.Sprintf(`## Subscription Terms

Your license to use the Software is contingent on payment of the applicable subscription fees on a %s basis. If your subscription lapses, your license terminates and you must cease using the Software.`, cycle))
	if cfg.AutoRenewal {
		parts = append(parts, `Your subscription will automatically renew at the end of each billing period unless you cancel before the renewal date. You may cancel at any time through your account settings; cancellation takes effect at the end of the current billing period.`)
	}
	if cfg.TrialPeriod != "" {
		parts = append(parts, fmt.Sprintf(`We offer a free trial of %s. At the end of the trial period, your subscription begins and your payment method will be charged unless you cancel before the trial ends.`, cfg.TrialPeriod))
	}
	return strings.Join(parts, "\n\n")
}

func eulaRestrictions(cfg Config) string {
	var items []string
	if cfg.NoReverseEngineering {
		items = append(items, "Reverse engineer, decompile, or disassemble the Software")
	}
	if cfg.NoModification {
		items = append(items, "Modify, adapt, or create derivative works of the Software")
	}
	if cfg.NoRedistribution {
		items = append(items, "Distribute, sublicense, rent, lease, or lend the Software")
	}
	if cfg.NoCommercialUse {
		items = append(items, "Use the Software for commercial purposes beyond your licensed scope")
	}
	items = append(items,
		"Remove or alter any proprietary notices or labels on the Software",
		"Use the Software in violation of any applicable law or regulation",
		"Use the Software to develop a competing product",
		"Circumvent or disable any security or licensing mechanism of the Software",
		"Use the Software on behalf of a third party without our written consent")
	return fmt.Sprintf(`## License Restrictions

You may not, and may not permit others to:

%s`, bulletList(items))
}

func eulaOwnership(cfg Config) string {
	return fmt.Sprintf(`## Intellectual Property and Ownership

The Software is licensed, not sold. %s retains all right, title, and interest in and to the Software, including all intellectual property rights. This Agreement does not grant you any rights to trademarks, service marks, or trade names of the Licensor. All rights not expressly granted to you in this Agreement are reserved.`,
		companyName(cfg, "The Licensor"))
}

func eulaDataCollection(cfg Config) string {
	return `## Data Collection

The Software may collect usage data, diagnostic information, and device information to operate, maintain, and improve the Software. Our collection and use of this information is described in our Privacy Policy. By using the Software, you consent to this collection and use.`
}

func eulaThirdPartyComponents(cfg Config) string {
	return `## Third-Party Components

The Software may include third-party software components that are subject to separate license terms. Your use of those components is governed by their respective licenses, copies of which are available in the Software documentation or upon request. Nothing in this Agreement limits your rights under those licenses.`
}

func eulaUpdates(cfg Config) string {
	return `## Updates and Maintenance

We may provide updates, upgrades, patches, or bug fixes for the Software at our discretion. Updates may be installed automatically without additional notice. This Agreement governs all updates unless an update is accompanied by separate terms. We are under no obligation to provide updates or to continue supporting any version of the Software.`
}

func eulaWarranty(cfg Config) string {
	if cfg.HasWarranty {
		period := cfg.WarrantyPeriod
		if period == "" {
			period = "90 days"
		}
		return fmt.Sprintf(`## Limited Warranty

We warrant that the Software will perform substantially in accordance with its documentation for a period of %s from the date of first installation. Your exclusive remedy for a breach of this warranty is, at our option, repair or replacement of the Software or a refund of the license fees paid.

EXCEPT FOR THE FOREGOING, THE SOFTWARE IS PROVIDED "AS IS" WITHOUT WARRANTY OF ANY KIND, AND WE DISCLAIM ALL OTHER WARRANTIES, EXPRESS OR IMPLIED, INCLUDING IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE.`, period)
	}
	return `## Disclaimer of Warranty

THE SOFTWARE IS PROVIDED "AS IS" AND "AS AVAILABLE" WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, AND NON-INFRINGEMENT. WE DO NOT WARRANT THAT THE SOFTWARE WILL MEET YOUR REQUIREMENTS OR THAT ITS OPERATION WILL BE UNINTERRUPTED OR ERROR-FREE.`
}

func eulaLiability(cfg Config) string {
	cap := "THE AMOUNT YOU PAID FOR THE SOFTWARE"
	if cfg.EULALiabilityCap != "" {
		cap = strings.ToUpper(cfg.EULALiabilityCap)
	}
	return fmt.Sprintf(`## Limitation of Liability

TO THE MAXIMUM EXTENT PERMITTED BY LAW, IN NO EVENT SHALL THE LICENSOR BE LIABLE FOR ANY INDIRECT, INCIDENTAL, SPECIAL, CONSEQUENTIAL, OR PUNITIVE DAMAGES, OR ANY LOSS OF PROFITS, DATA, OR BUSINESS OPPORTUNITIES, ARISING OUT OF OR RELATED TO THIS AGREEMENT OR THE USE OF THE SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGES.

OUR TOTAL LIABILITY UNDER THIS AGREEMENT SHALL NOT EXCEED %s.`, cap)
}

func eulaTermination(cfg Config) string {
	return `## Termination

This Agreement is effective until terminated. It terminates automatically, without notice, if you fail to comply with any of its terms. Upon termination, you must cease all use of the Software and destroy all copies in your possession or control. Sections concerning ownership, warranty disclaimers, and limitation of liability survive termination.`
}

func eulaExport(cfg Config) string {
	return `## Export Restrictions

The Software may be subject to export control laws and regulations. You agree not to export, re-export, or transfer the Software to any country, person, or entity to which such transfer is prohibited by applicable law, including countries subject to embargo and persons on restricted party lists.`
}

func eulaGoverningLaw(cfg Config) string {
	jurisdiction := cfg.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = cfg.Country
	}
	if jurisdiction == "" {
		jurisdiction = "the jurisdiction in which the Licensor is established"
	}
	return fmt.Sprintf(`## Governing Law

This Agreement shall be governed by and construed in accordance with the laws of %s, without regard to its conflict of law principles. Any legal action arising out of this Agreement shall be brought exclusively in the courts located in that jurisdiction.`, jurisdiction)
}
