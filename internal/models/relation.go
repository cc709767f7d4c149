package models

// Relation identifies a membership join table between a user (the subject)
// and a recipe or another user (the object).
type Relation int

const (
	RelationFavorite Relation = iota + 1
	RelationShoppingCart
	RelationSubscription
)

// Table returns the join table backing the relation.
func (r Relation) Table() string {
	switch r {
	case RelationFavorite:
		return "favorite_recipes"
	case RelationShoppingCart:
		return "shopping_carts"
	case RelationSubscription:
		return "subscribers"
	}
	return ""
}

// SubjectColumn is the column holding the requesting user.
func (r Relation) SubjectColumn() string {
	return "user_id"
}

// ObjectColumn is the column holding the recipe or followed author.
func (r Relation) ObjectColumn() string {
	if r == RelationSubscription {
		return "author_id"
	}
	return "recipe_id"
}

// String returns the relation name used in logs and events.
func (r Relation) String() string {
	switch r {
	case RelationFavorite:
		return "favorite"
	case RelationShoppingCart:
		return "shopping_cart"
	case RelationSubscription:
		return "subscription"
	}
	return "unknown"
}

// Events returns the event types published when the relation is added and removed.
func (r Relation) Events() (added, removed string) {
	switch r {
	case RelationFavorite:
		return EventFavoriteAdded, EventFavoriteRemoved
	case RelationShoppingCart:
		return EventShoppingCartAdded, EventShoppingCartRemoved
	case RelationSubscription:
		return EventSubscribed, EventUnsubscribed
	}
	return "", ""
}
