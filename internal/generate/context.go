// Package generate implements the model-backed component pipeline: signal
// derivation, prompt construction, tolerant response parsing, schema
// validation, personalization and the deterministic fallback.
package generate

import (
	"regexp"
	"sort"
	"strings"

	"pagecraft/internal/core"
)

// Request carries the per-request inputs to the generation pipeline. It is
// never persisted beyond one generation call.
type Request struct {
	Query     string
	Intent    core.Intent
	Interests []core.Interest
	Discovery []core.DiscoveryResult
}

// intentProfile is one row of the intent lookup tables.
type intentProfile struct {
	ctaStrategy   string
	urgencyLevel  string
	emotionalTone string
	targetAction  string
	funnelStage   string
}

// intentProfiles maps searcher intent to generation signals. Unrecognized
// or absent intents use the informational row.
var intentProfiles = map[core.Intent]intentProfile{
	core.IntentCommercial: {
		ctaStrategy:   "direct_purchase",
		urgencyLevel:  "high",
		emotionalTone: "confident",
		targetAction:  "Buy now",
		funnelStage:   "decision",
	},
	core.IntentEducational: {
		ctaStrategy:   "guided_learning",
		urgencyLevel:  "low",
		emotionalTone: "supportive",
		targetAction:  "Start learning",
		funnelStage:   "awareness",
	},
	core.IntentInformational: {
		ctaStrategy:   "soft_engagement",
		urgencyLevel:  "low",
		emotionalTone: "helpful",
		targetAction:  "Read the guide",
		funnelStage:   "awareness",
	},
	core.IntentNavigational: {
		ctaStrategy:   "quick_access",
		urgencyLevel:  "medium",
		emotionalTone: "efficient",
		targetAction:  "Go to page",
		funnelStage:   "consideration",
	},
}

// conversionSignals maps category/tag keywords to conversion opportunities.
var conversionSignals = map[string]string{
	"product":    "purchase",
	"shop":       "purchase",
	"pricing":    "purchase",
	"deal":       "purchase",
	"newsletter": "signup",
	"membership": "signup",
	"account":    "signup",
	"course":     "signup",
	"download":   "download",
	"ebook":      "download",
	"template":   "download",
	"checklist":  "download",
}

const maxCompetitiveKeywords = 5

var titleWordRegex = regexp.MustCompile(`[a-zA-Z0-9]+`)

// BuildContext derives the structured generation signals for a request. It
// is a pure function of its input.
func BuildContext(req Request) core.GenerationContext {
	profile, ok := intentProfiles[req.Intent]
	intent := req.Intent
	if !ok {
		intent = core.IntentInformational
		profile = intentProfiles[core.IntentInformational]
	}

	return core.GenerationContext{
		Query:               req.Query,
		Intent:              intent,
		CTAStrategy:         profile.ctaStrategy,
		UrgencyLevel:        profile.urgencyLevel,
		EmotionalTone:       profile.emotionalTone,
		TargetAction:        profile.targetAction,
		FunnelStage:         profile.funnelStage,
		Themes:              discoveryThemes(req.Discovery),
		Interests:           topInterests(req.Interests, 3),
		ConversionGoals:     conversionOpportunities(req.Discovery),
		CompetitiveKeywords: competitiveKeywords(req.Discovery),
	}
}

// discoveryThemes collects the distinct categories seen across discovery
// results, in first-seen order.
func discoveryThemes(results []core.DiscoveryResult) []string {
	seen := make(map[string]bool)
	themes := []string{}
	for _, result := range results {
		for _, category := range result.Categories {
			key := strings.ToLower(category)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			themes = append(themes, key)
		}
	}
	return themes
}

// conversionOpportunities scans discovery categories and tags for signals
// of purchase, signup or download opportunities.
func conversionOpportunities(results []core.DiscoveryResult) []string {
	seen := make(map[string]bool)
	goals := []string{}
	for _, result := range results {
		labels := append(append([]string{}, result.Categories...), result.Tags...)
		for _, label := range labels {
			lower := strings.ToLower(label)
			for keyword, goal := range conversionSignals {
				if strings.Contains(lower, keyword) && !seen[goal] {
					seen[goal] = true
					goals = append(goals, goal)
				}
			}
		}
	}
	sort.Strings(goals) // map iteration above is unordered
	return goals
}

// competitiveKeywords extracts words longer than 4 characters from
// candidate titles, deduplicated and capped at 5.
func competitiveKeywords(results []core.DiscoveryResult) []string {
	seen := make(map[string]bool)
	keywords := []string{}
	for _, result := range results {
		for _, word := range titleWordRegex.FindAllString(result.Title, -1) {
			lower := strings.ToLower(word)
			if len(lower) <= 4 || seen[lower] {
				continue
			}
			seen[lower] = true
			keywords = append(keywords, lower)
			if len(keywords) == maxCompetitiveKeywords {
				return keywords
			}
		}
	}
	return keywords
}

// topInterests returns up to n interests sorted by descending weight.
func topInterests(interests []core.Interest, n int) []core.Interest {
	sorted := make([]core.Interest, len(interests))
	copy(sorted, interests)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Weight > sorted[b].Weight
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
