package models

// UserActionShare is the action type of a "share to contact" push event.
const UserActionShare = "SHARE"

// Notification is the body of an inbound push notification.
type Notification struct {
	Collection  string       `json:"collection,omitempty"`
	ItemID      string       `json:"itemId"`
	Operation   string       `json:"operation,omitempty"`
	UserToken   string       `json:"userToken"`
	UserActions []UserAction `json:"userActions"`
}

// UserAction describes what the wearer did with the item.
type UserAction struct {
	Type    string `json:"type"`
	Payload string `json:"payload,omitempty"`
}

// IsShare reports whether any action is a share.
func (n Notification) IsShare() bool {
	for _, a := range n.UserActions {
		if a.Type == UserActionShare {
			return true
		}
	}
	return false
}
