package domain

import "strings"

type carrierRule struct {
	keywords []string
	status   DeliveryStatus
}

// Matching order matters: carrier strings may contain several
// overlapping keywords. "in transit" wins over "out for delivery",
// and the failure keywords are checked before the bare "delivered"
// keyword so that "undelivered" resolves to the failure path.
var carrierRules = []carrierRule{
	{[]string{"pickup"}, DeliveryPacked},
	{[]string{"in transit"}, DeliveryShipped},
	{[]string{"out for delivery"}, DeliveryOutForDelivery},
	{[]string{"rto", "undelivered", "delivery failed"}, DeliveryCancelled},
	{[]string{"delivered"}, DeliveryDelivered},
	{[]string{"cancel"}, DeliveryCancelled},
}

// TranslateCarrierStatus maps a carrier's free-text status to an
// internal delivery state. The second return is false when no rule
// matches; the caller must leave the prior state unchanged.
func TranslateCarrierStatus(raw string) (DeliveryStatus, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	for _, rule := range carrierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(s, kw) {
				return rule.status, true
			}
		}
	}
	return "", false
}
