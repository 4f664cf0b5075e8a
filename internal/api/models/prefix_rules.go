package models

// PrefixRuleRequest is the body of POST /prefix-rules.
type PrefixRuleRequest struct {
	Prefix string `json:"prefix" binding:"required"`
	Use    string `json:"wwpn_type" binding:"required"`
	Vendor string `json:"vendor,omitempty"`
}

// PrefixRuleListResponse wraps the configured WWPN prefix rules.
type PrefixRuleListResponse struct {
	Rules []PrefixRuleResponse `json:"rules"`
	Count int                  `json:"count"`
}

// PrefixRuleResponse is one WWPN prefix rule.
type PrefixRuleResponse struct {
	Prefix string `json:"prefix"`
	Use    string `json:"wwpn_type"`
	Vendor string `json:"vendor,omitempty"`
}
