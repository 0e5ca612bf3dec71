package booking

// Price returns round(durationMinutes / 60 * pricePerHour), rounding half up
// on the currency's smallest unit. The second value is false when no price
// can be derived.
func Price(durationMinutes int, pricePerHour int64) (int64, bool) {
	if durationMinutes <= 0 || pricePerHour < 0 {
		return 0, false
	}

	return (int64(durationMinutes)*pricePerHour + 30) / 60, true
}

type PricedBooking struct {
	Request         Request
	DurationMinutes int
	TotalPrice      int64
}

func Quote(req Request, pricePerHour int64) (PricedBooking, bool) {
	duration := req.DurationMinutes()
	total, ok := Price(duration, pricePerHour)

	if !ok {
		return PricedBooking{}, false
	}

	return PricedBooking{Request: req, DurationMinutes: duration, TotalPrice: total}, true
}
