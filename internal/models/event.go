package models

// Domain event types.
const (
	EventRecipeCreated       = "recipe_created"
	EventRecipeUpdated       = "recipe_updated"
	EventRecipeDeleted       = "recipe_deleted"
	EventFavoriteAdded       = "favorite_added"
	EventFavoriteRemoved     = "favorite_removed"
	EventShoppingCartAdded   = "shopping_cart_added"
	EventShoppingCartRemoved = "shopping_cart_removed"
	EventSubscribed          = "subscribed"
	EventUnsubscribed        = "unsubscribed"
)

// Event represents a domain change published to the event stream.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier of the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	UserID    int64  `json:"user_id"`   // UserID is the user who caused the change.
	ObjectID  int64  `json:"object_id"` // ObjectID is the recipe or author affected.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (in seconds) of the change.
}
