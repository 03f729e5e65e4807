package forms

import (
	"context"
	"fmt"

	"github.com/mmynk/splitneat/internal/models"
)

// AddFriend is the input state of the add-friend form.
type AddFriend struct {
	Name  string
	Image string
}

// Submit adds the friend and clears the form.
// An empty name or image is rejected and the form is left as is.
func (f *AddFriend) Submit(ctx context.Context, adder FriendAdder) (*models.Friend, error) {
	if f.Name == "" || f.Image == "" {
		return nil, fmt.Errorf("%w: name and image are required", ErrRejected)
	}

	friend, err := adder.AddFriend(ctx, f.Name, f.Image)
	if err != nil {
		return nil, err
	}

	f.Reset()
	return friend, nil
}

// Reset empties both fields.
func (f *AddFriend) Reset() {
	f.Name = ""
	f.Image = ""
}
