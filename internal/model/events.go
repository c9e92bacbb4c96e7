package model

// Topic names a collection whose change notifications can be subscribed to.
// Notifications carry no payload; subscribers re-read storage on receipt.
type Topic string

const (
	// TopicPlayers fires after any write to the player collection
	TopicPlayers Topic = "players"
	// TopicPayments fires after any write to the payment collection
	TopicPayments Topic = "payments"
	// TopicLocations fires after any write to the location collection
	TopicLocations Topic = "locations"
	// TopicRoles fires after any write to the role collection
	TopicRoles Topic = "roles"
)

// Topics lists every collection topic, in stable order
func Topics() []Topic {
	return []Topic{TopicPlayers, TopicPayments, TopicLocations, TopicRoles}
}
