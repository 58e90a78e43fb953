package booking

// Settlement methods the supplier vocabulary knows.
const (
	SettlementVoucher  = "VOUCHER"
	SettlementDirect   = "DIRECT"
	SettlementDeferred = "DEFERRED"
)

func advertises(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}

// ChooseSettlementMethod picks the settlement method for a booking: VOUCHER
// when a reseller reference is present and the product supports it, then
// DIRECT under the same condition, then DEFERRED when advertised, then the
// first advertised method, defaulting to DEFERRED when the product
// advertises nothing.
func ChooseSettlementMethod(advertised []string, reference string) string {
	if reference != "" && advertises(advertised, SettlementVoucher) {
		return SettlementVoucher
	}
	if reference != "" && advertises(advertised, SettlementDirect) {
		return SettlementDirect
	}
	if advertises(advertised, SettlementDeferred) {
		return SettlementDeferred
	}
	if len(advertised) > 0 {
		return advertised[0]
	}
	return SettlementDeferred
}
