package keyword

import (
	"regexp"
	"strings"
)

// The classifier is a cascade of substring-match rules. Priority is encoded
// purely by list order: the first matching rule wins, so the rule slices
// below must not be reordered.

type categoryRule struct {
	terms  []string
	result Category
}

var categoryRules = []categoryRule{
	{[]string{"scanner", "scan", "reader", "ocr"}, CategoryScanner},
	{[]string{"print", "printing", "order", "buy"}, CategoryPrinting},
	{[]string{"digital", "qr", "nfc", "virtual", "electronic"}, CategoryDigital},
	{[]string{"design", "template", "make", "create", "maker"}, CategoryDesign},
	{[]string{"network", "event", "conference", "meetup"}, CategoryNetworking},
	{[]string{"vs", "versus", "compare", "best", "top"}, CategoryComparison},
}

type intentRule struct {
	terms  []string
	result Intent
}

var transactionalTerms = []string{"buy", "order", "price", "cost", "cheap", "free", "near me"}
var informationalTerms = []string{"how to", "what is", "why", "guide", "tips", "ideas"}
var commercialTerms = []string{"best", "top", "review", "compare", "vs"}

var questionTerms = []string{
	"how to", "what is", "what are", "why", "when", "where", "which",
	"should i", "do i need", "can i", "is it",
}

var brandNames = []string{
	"vistaprint", "moo", "staples", "fedex", "ups", "canva", "zazzle",
	"avery", "gotprint", "uprinting", "amazon", "office depot", "shutterfly",
}

type audienceRule struct {
	terms  []string
	result Audience
}

var audienceRules = []audienceRule{
	{[]string{"network", "conference", "event", "meetup", "connection"}, AudienceNetworkingFocused},
	{[]string{"make", "create", "design", "template", "diy", "homemade"}, AudienceDIYCreators},
	{[]string{"business", "company", "professional", "corporate", "office"}, AudienceSmallBusiness},
	{[]string{"startup", "entrepreneur", "freelance", "side hustle", "personal brand"}, AudienceEntrepreneurs},
	{[]string{"card holder", "organizer", "wallet", "case"}, AudienceProfessionals},
}

// lowValuePatterns identify pure product-listing phrases that cannot
// support original blog content.
var lowValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(business )?card holders?$`),
	regexp.MustCompile(`^(business )?card cases?$`),
	regexp.MustCompile(`^(business )?card organizers?$`),
	regexp.MustCompile(`^(business )?card wallets?$`),
	regexp.MustCompile(`^(business )?card displays?$`),
	regexp.MustCompile(`holder.*business card`),
	regexp.MustCompile(`business card.*holder$`),
	regexp.MustCompile(`^leather.*card`),
}

// DetectCategory maps a keyword phrase to its topical bucket.
func DetectCategory(text string) Category {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		if containsAny(lower, rule.terms) {
			return rule.result
		}
	}
	if IsQuestion(text) {
		return CategoryQuestion
	}
	if IsBranded(text) {
		return CategoryBrand
	}
	return CategoryOther
}

// DetectIntent maps a keyword phrase to the searcher's intent. The branded
// check sits in the middle of the cascade so that navigational brand
// lookups win over generic commercial triggers like "best" or "review".
func DetectIntent(text string) Intent {
	lower := strings.ToLower(text)
	rules := []intentRule{
		{transactionalTerms, IntentTransactional},
		{informationalTerms, IntentInformational},
	}
	for _, rule := range rules {
		if containsAny(lower, rule.terms) {
			return rule.result
		}
	}
	if IsBranded(text) {
		return IntentNavigational
	}
	if containsAny(lower, commercialTerms) {
		return IntentCommercial
	}
	return IntentInformational
}

// IsQuestion reports whether the phrase reads as a question.
func IsQuestion(text string) bool {
	return containsAny(strings.ToLower(text), questionTerms)
}

// IsBranded reports whether the phrase names a known competitor brand.
func IsBranded(text string) bool {
	return containsAny(strings.ToLower(text), brandNames)
}

// DetectAudience maps a keyword phrase to its target reader segment.
func DetectAudience(text string) Audience {
	lower := strings.ToLower(text)
	for _, rule := range audienceRules {
		if containsAny(lower, rule.terms) {
			return rule.result
		}
	}
	return AudienceGeneral
}

// IsLowValueKeyword reports whether the phrase is a pure product-listing
// term, matched against a fixed pattern set.
func IsLowValueKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, pattern := range lowValuePatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
