package service

// Friend is a friend as sent over the wire, with its rendered balance message.
type Friend struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Balance  string `json:"balance"`
	Message  string `json:"message"`
	Tone     string `json:"tone"`
	Selected bool   `json:"selected"`
}

// Summary is the overall position across all friends.
type Summary struct {
	OwedToUser string `json:"owed_to_user"`
	UserOwes   string `json:"user_owes"`
	Message    string `json:"message"`
}

// State is the full ledger state after a call.
type State struct {
	Friends       []Friend `json:"friends"`
	SelectedID    *int     `json:"selected_id,omitempty"`
	ShowAddFriend bool     `json:"show_add_friend"`
	Summary       Summary  `json:"summary"`
}

// GetStateRequest asks for the current ledger state.
type GetStateRequest struct{}

// GetStateResponse carries the current ledger state.
type GetStateResponse struct {
	State State `json:"state"`
}

// AddFriendRequest carries the add-friend form fields as typed.
type AddFriendRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// AddFriendResponse reports Accepted=false when the input was rejected;
// the state is unchanged in that case.
type AddFriendResponse struct {
	Accepted bool    `json:"accepted"`
	Friend   *Friend `json:"friend,omitempty"`
	State    State   `json:"state"`
}

// ToggleAddFriendPanelRequest opens or closes the add-friend panel.
type ToggleAddFriendPanelRequest struct{}

// ToggleAddFriendPanelResponse carries the state after the toggle.
type ToggleAddFriendPanelResponse struct {
	State State `json:"state"`
}

// SelectFriendRequest selects a friend, or deselects the selected one.
type SelectFriendRequest struct {
	FriendID int `json:"friend_id"`
}

// SelectFriendResponse carries the state after the selection change.
type SelectFriendResponse struct {
	State State `json:"state"`
}

// SplitBillRequest carries the split-bill form fields as typed.
type SplitBillRequest struct {
	Bill       string `json:"bill"`
	PaidByUser string `json:"paid_by_user"`
	Payer      string `json:"payer"`
}

// SplitBillResponse reports Accepted=false when the input was rejected;
// the state, including the selection, is unchanged in that case.
type SplitBillResponse struct {
	Accepted bool    `json:"accepted"`
	Friend   *Friend `json:"friend,omitempty"`
	State    State   `json:"state"`
}
