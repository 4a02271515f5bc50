package payments

// ChargeResult reports the outcome of a provider charge.
type ChargeResult struct {
	TransactionID string
	Status        string
}

// Provider is the payment boundary. Booking handlers only talk to this
// interface; a real gateway slots in without touching booking-state logic.
type Provider interface {
	Charge(amount float64, currency, reference string) (*ChargeResult, error)
}

// Active is the provider used by the booking handlers.
// TODO: replace the simulated provider with a real gateway integration once
// payments go live.
var Active Provider = &SimulatedProvider{}
