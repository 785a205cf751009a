package complete_order

import "github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"

// Request is the raw webhook delivery: the unparsed body plus the signature
// header. Verification happens inside the usecase so the handler stays thin.
type Request struct {
	Payload   []byte
	Signature string
}

// Response reports what the event changed. Ignored marks an event type this
// service does not act on; AlreadyPaid marks a retried delivery that was
// acknowledged without a second transition.
type Response struct {
	OrderID      string
	Ignored      bool
	AlreadyPaid  bool
	PointsEarned int
	LoyaltyTier  domain.LoyaltyTier
	TierUpgraded bool
}
