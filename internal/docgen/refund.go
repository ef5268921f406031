// File path: internal/docgen/refund.go
package docgen

import (
	"fmt"
	"strings"
	"time"
)

func renderRefund(cfg Config) string {
	var sections []string
	sections = append(sections, refundHeader(cfg))
	sections = append(sections, refundIntroduction(cfg))
	if cfg.HasSatisfactionGuarantee {
		sections = append(sections, refundGuarantee(cfg))
	}
	switch cfg.RefundBusinessType {
	case "digital", "services", "subscription":
		sections = append(sections, refundDigital(cfg))
	case "products":
		sections = append(sections, refundPhysical(cfg))
	}
	if cfg.RefundBusinessType == "subscription" || cfg.HasSubscriptions {
		sections = append(sections, refundSubscriptions(cfg))
	}
	sections = append(sections, refundRequestProcess(cfg))
	sections = append(sections, refundProcessing(cfg))
	sections = append(sections, refundLateOrMissing(cfg))
	sections = append(sections, refundSaleItems(cfg))
	if cfg.RefundBusinessType == "products" {
		sections = append(sections, refundDamagedItems())
	}
	sections = append(sections, refundChargebacks())
	sections = append(sections, refundLegalRights())
	sections = append(sections, refundExceptions())
	sections = append(sections, refundChanges())
	sections = append(sections, contactSection(cfg, "Refund Policy"))
	return joinSections(sections)
}

func refundHeader(cfg Config) string {
	return fmt.Sprintf(`# Refund Policy

**%s**

**Effective Date:** %s

**Last Updated:** %s`, companyName(cfg, "Our Company"), effectiveDate(cfg), time.Now().Format("January 2, 2006"))
}

func refundIntroduction(cfg Config) string {
	email := cfg.ContactEmail
	if email == "" {
		email = "[contact email]"
	}
	return fmt.Sprintf(`## Overview

At %s, we want you to be completely satisfied with your purchase. This Refund Policy outlines the circumstances under which we offer refunds, the process for requesting one, and the timelines involved.

If you have any questions about our refund policy, please contact us at %s.`,
		companyName(cfg, "our company"), email)
}

func refundGuarantee(cfg Config) string {
	period := cfg.GuaranteePeriod
	if period == "" {
		period = "30 days"
	}
	return fmt.Sprintf(`## Satisfaction Guarantee

We stand behind our products and services with a satisfaction guarantee:

- Full refund if you're not satisfied within %s
- No questions asked
- Easy and hassle-free process
- Quick processing of refunds`, period)
}

func refundDigital(cfg Config) string {
	period := cfg.RefundPeriod
	if period == "" {
		period = "14 days"
	}
	var parts []string
	parts = append(parts, fmt.Sprintf(`## Refund Policy for Digital Products/Services

### Refund Eligibility

You may request a refund within **%s** of your purchase if:

- The service/product does not work as described
- You have not substantially used the service
- Technical issues prevent you from using the product
- The product was purchased by mistake (limited circumstances)

### Non-Refundable Items

The following are generally NOT eligible for refunds:

- Services that have been fully rendered or consumed
- Custom or personalized digital products
- Products purchased on sale or with promotional discounts (unless defective)
- Subscriptions after the refund period has passed
- Products where you have violated our terms of service`, period))
	if cfg.OffersProratedRefunds {
		parts = append(parts, `### Pro-Rated Refunds

For subscription services cancelled mid-cycle:

- We offer pro-rated refunds based on unused time
- The refund amount is calculated from the cancellation date
- Pro-rated refunds are processed within 5-10 business days`)
	}
	return strings.Join(parts, "\n\n")
}

func refundPhysical(cfg Config) string {
	period := cfg.ReturnPeriod
	if period == "" {
		period = "30 days"
	}
	packaging := "Be in the original packaging (preferred)"
	if cfg.RequiresOriginalPkg {
		packaging = "Be in the original packaging (required)"
	}
	receipt := "Have proof of purchase available upon request"
	if cfg.RequiresReceipt {
		receipt = "Include the receipt or proof of purchase"
	}
	var parts []string
	parts = append(parts, fmt.Sprintf(`## Return Policy for Physical Products

### Return Window

You have **%s** from the date of delivery to return eligible items for a refund or exchange.

### Return Conditions

To be eligible for a return, items must:

- Be unused and in the same condition that you received them
- %s
- %s
- Not be damaged due to misuse or negligence

### Non-Returnable Items

The following items cannot be returned:

- Perishable goods (food, flowers, etc.)
- Personal care items (cosmetics, hygiene products)
- Intimate or sanitary goods
- Hazardous materials
- Custom or personalized items
- Gift cards
- Downloadable software products
- Items marked as "Final Sale" or "Non-Returnable"`, period, packaging, receipt))
	if cfg.OffersExchanges {
		parts = append(parts, `### Exchanges

We are happy to exchange items for a different size, color, or product of equal value. To request an exchange:

1. Contact our customer service team
2. Provide your order number and the item you wish to exchange
3. Specify the replacement item you want
4. Ship the original item back to us
5. We will ship the replacement once we receive the return`)
	}
	if cfg.RestockingFee != "" {
		parts = append(parts, fmt.Sprintf(`### Restocking Fee

A restocking fee of **%s** may apply to:

- Items returned without original packaging
- Items returned after the standard return window (if accepted)
- Large or specialty items
- Electronics and appliances that have been opened`, cfg.RestockingFee))
	}
	var shipping string
	switch cfg.ReturnShipping {
	case "company":
		shipping = "**We provide free return shipping** for defective or incorrectly shipped items."
	case "prepaid":
		shipping = "**We provide prepaid return labels** for all returns."
	default:
		shipping = "**Customers are responsible for return shipping costs** for standard returns."
	}
	parts = append(parts, fmt.Sprintf(`### Return Shipping

%s

Important shipping notes:

- Use a trackable shipping service
- Keep your shipping receipt as proof of return
- We recommend insuring valuable items
- We are not responsible for items lost in return transit`, shipping))
	return strings.Join(parts, "\n\n")
}

func refundSubscriptions(cfg Config) string {
	email := cfg.ContactEmail
	if email == "" {
		email = "our support team"
	}
	var option string
	switch cfg.SubscriptionRefunds {
	case "full":
		option = "**Full Refund:** Cancel within the first billing period for a full refund."
	case "none":
		option = "**No Refund:** Subscription fees are non-refundable, but you retain access until the end of your billing period."
	default:
		option = "**Pro-Rated Refund:** Receive a refund for the unused portion of your subscription."
	}
	trial := ""
	if cfg.HasFreeTrial {
		trial = `

### Free Trial Conversions

If you signed up for a free trial:

- Cancel before the trial ends to avoid charges
- No refund for charges if you forget to cancel
- Set a reminder before your trial expires`
	}
	return fmt.Sprintf(`## Subscription Refunds

### Cancellation Policy

You may cancel your subscription at any time through:

- Your account dashboard
- Contacting customer support
- Email request to %s

### Refund Options

%s%s`, email, option, trial)
}

func refundRequestProcess(cfg Config) string {
	email := cfg.ContactEmail
	if email == "" {
		email = "[support email]"
	}
	return fmt.Sprintf(`## How to Request a Refund

### Step-by-Step Process

1. **Contact Us**
   - Email: %s
   - Include your order number and reason for refund

2. **Provide Required Information**
   - Order number or transaction ID
   - Date of purchase
   - Reason for refund request
   - Photos of damaged items (if applicable)

3. **Wait for Confirmation**
   - We will review your request within 2-3 business days
   - You will receive an email with instructions or approval

4. **Return Items (if applicable)**
   - Ship items to the provided address
   - Include any required documentation

5. **Receive Your Refund**
   - Refunds are processed after we receive and inspect returns
   - Allow 5-10 business days for the refund to appear`, email)
}

func refundProcessing(cfg Config) string {
	processing := cfg.RefundProcessingTime
	if processing == "" {
		processing = "5-10 business days"
	}
	return fmt.Sprintf(`## Refund Processing

### Processing Time

Once your refund is approved, please allow:

- **Credit/Debit Cards:** %s
- **PayPal:** 3-5 business days
- **Bank Transfer:** 5-10 business days
- **Store Credit:** Immediate

### Refund Method

Refunds will be issued to the original payment method used for the purchase unless:

- The original payment method is no longer valid
- You request store credit instead
- Local regulations require a different method

### Partial Refunds

We may issue partial refunds in cases where:

- Items are returned after the return window (at our discretion)
- Items show signs of use or damage
- Not all items from an order are returned
- Restocking fees apply`, processing)
}

func refundLateOrMissing(cfg Config) string {
	email := cfg.ContactEmail
	if email == "" {
		email = "[support email]"
	}
	return fmt.Sprintf(`## Late or Missing Refunds

If you haven't received your refund after the expected timeframe:

1. **Check Your Account**
   - Review your bank or credit card statement
   - Check your PayPal account (if applicable)

2. **Contact Your Bank**
   - There may be processing delays on their end
   - Some banks take additional time to post refunds

3. **Contact Your Credit Card Company**
   - Processing times vary between providers
   - Ask about their refund posting timeline

4. **Contact Us**
   - If you've completed all steps above and still haven't received your refund
   - Email us at %s with your order details
   - We will investigate and resolve the issue`, email)
}

func refundSaleItems(cfg Config) string {
	policy := `Sale items and clearance items are FINAL SALE and cannot be returned or refunded unless defective.`
	if cfg.SaleItemsRefundable {
		policy = `Sale items are eligible for refunds under the same terms as regular-priced items.`
	}
	return fmt.Sprintf(`## Sale Items and Promotions

### Sale Items

%s

### Promotional Discounts

- Items purchased with promo codes follow standard refund policies
- Refund amounts will reflect the discounted price paid
- Free promotional items must be returned with the qualifying purchase

### Bundle Deals

- Returning part of a bundle may affect the refund amount
- The full bundle discount may be deducted from partial returns
- We recommend returning the entire bundle for a full refund`, policy)
}

func refundDamagedItems() string {
	return `## Damaged or Defective Items

### Damaged in Shipping

If your item arrived damaged:

1. Take photos of the packaging and damage
2. Contact us within 48 hours of delivery
3. Do not discard the packaging or items
4. We will arrange a replacement or full refund

### Defective Products

If your product is defective:

1. Contact us with a description of the defect
2. Provide photos or videos if possible
3. We may request you return the item for inspection
4. We will provide a replacement, repair, or refund

### Wrong Item Received

If you received the wrong item:

1. Contact us immediately
2. Do not use or open the incorrect item
3. We will send the correct item and arrange return pickup
4. Return shipping is free for our errors`
}

func refundChargebacks() string {
	return `## Chargebacks and Disputes

### Before Filing a Chargeback

Please contact us before disputing a charge with your bank or credit card company. We want to resolve any issues directly and can often do so faster than the dispute process.

### Our Commitment

- We respond to all refund requests within 48 hours
- We work to find a fair resolution for all parties
- We honor all valid refund requests within our policy

### Chargeback Consequences

Filing a chargeback without first contacting us may result in:

- Suspension of your account
- Inability to make future purchases
- Additional fees if the chargeback is found to be unwarranted`
}

func refundLegalRights() string {
	return `## Your Legal Rights

### Consumer Protection Laws

This refund policy does not affect your statutory rights under consumer protection laws. In some jurisdictions, you may have additional rights, including:

- **European Union:** 14-day cooling-off period for online purchases
- **United Kingdom:** Consumer Rights Act protections
- **Australia:** Australian Consumer Law guarantees
- **United States:** State-specific consumer protection laws

### Right of Withdrawal (EU/UK)

If you are in the European Union or United Kingdom, you have the right to withdraw from your purchase within 14 days without giving any reason, subject to certain exceptions for:

- Digital content after download has begun
- Personalized or custom-made products
- Sealed goods unsealed after delivery`
}

func refundExceptions() string {
	return `## Exceptions and Special Circumstances

### Force Majeure

In cases of natural disasters, pandemics, or other events beyond our control:

- Return windows may be extended
- Shipping delays will not affect your refund eligibility
- We will communicate any policy changes

### Goodwill Exceptions

At our sole discretion, we may make exceptions to this policy in special circumstances. Please contact us to discuss your situation.

### Fraud Prevention

We reserve the right to refuse refunds if we detect:

- Patterns of abuse (frequent returns, "wardrobing")
- Fraudulent claims
- Violation of our terms of service`
}

func refundChanges() string {
	return `## Changes to This Policy

We reserve the right to modify this refund policy at any time. Changes will be effective immediately upon posting to our website.

- The policy in effect at the time of your purchase applies to that transaction
- We will notify customers of significant changes via email
- Continued use of our services constitutes acceptance of the updated policy`
}
