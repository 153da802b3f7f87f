package identify

import "strings"

// roleKeywords maps canonical role names to the domain keywords used to
// judge repository relevance and resume keyword coverage.
var roleKeywords = map[string][]string{
	// Technical
	"software engineer":    {"python", "java", "javascript", "react", "node", "docker", "kubernetes", "microservices", "rest", "graphql", "aws", "gcp", "ci/cd", "unit testing"},
	"data scientist":       {"python", "pandas", "numpy", "sklearn", "tensorflow", "pytorch", "nlp", "cv", "statistics", "sql", "experiment", "a/b testing", "data visualization"},
	"devops engineer":      {"ci/cd", "docker", "kubernetes", "terraform", "ansible", "aws", "gcp", "azure", "monitoring", "prometheus", "grafana", "helm", "sre"},
	"web developer":        {"html", "css", "javascript", "react", "next.js", "vue", "node", "express", "rest", "graphql", "responsive", "seo"},
	"mobile app developer": {"android", "ios", "kotlin", "swift", "flutter", "react native", "firebase", "push notifications", "play store", "app store"},

	// Non-technical
	"human resources":  {"recruitment", "onboarding", "payroll", "employee engagement", "hrms", "policy", "compliance", "talent acquisition", "grievance", "training"},
	"marketing":        {"seo", "sem", "campaign", "content", "email marketing", "social media", "analytics", "branding", "roi", "conversion", "google ads"},
	"sales":            {"crm", "pipeline", "lead generation", "negotiation", "quota", "prospecting", "closing", "upsell", "cross-sell", "demo"},
	"finance":          {"budgeting", "forecasting", "reconciliation", "audit", "financial analysis", "p&l", "variance", "sap", "tally", "excel"},
	"customer service": {"crm", "zendesk", "freshdesk", "sla", "csat", "ticketing", "call handling", "escalation", "knowledge base", "communication"},
}

// roleOrder fixes the fallback scan order so titles naming several base
// roles always resolve to the same one.
var roleOrder = []string{
	"software engineer",
	"data scientist",
	"devops engineer",
	"web developer",
	"mobile app developer",
	"human resources",
	"marketing",
	"sales",
	"finance",
	"customer service",
}

// RoleKeywords returns the keyword list for a role. Substring matching lets
// titles like "senior software engineer" find their base role.
func RoleKeywords(role string) []string {
	role = NormalizeRole(role)
	if role == "" {
		return nil
	}
	if kws, ok := roleKeywords[role]; ok {
		return kws
	}
	for _, base := range roleOrder {
		if strings.Contains(role, base) {
			return roleKeywords[base]
		}
	}
	return nil
}
