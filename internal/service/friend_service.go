package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitneat/internal/forms"
	"github.com/mmynk/splitneat/internal/ledger"
	"github.com/mmynk/splitneat/internal/metrics"
	"github.com/mmynk/splitneat/internal/models"
	"github.com/mmynk/splitneat/internal/view"
)

// Ensure FriendService implements FriendServiceHandler
var _ FriendServiceHandler = (*FriendService)(nil)

// FriendService implements the Connect FriendService on top of a ledger.
type FriendService struct {
	ledger  *ledger.Ledger
	metrics *metrics.Metrics
}

// NewFriendService creates a new FriendService. m may be nil.
func NewFriendService(l *ledger.Ledger, m *metrics.Metrics) *FriendService {
	return &FriendService{ledger: l, metrics: m}
}

// GetState returns the friends, selection and panel state.
func (s *FriendService) GetState(ctx context.Context, req *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error) {
	state, err := s.state(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&GetStateResponse{State: state}), nil
}

// AddFriend submits the add-friend form.
func (s *FriendService) AddFriend(ctx context.Context, req *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error) {
	slog.Info("AddFriend request received", "name", req.Msg.Name)

	form := forms.AddFriend{Name: req.Msg.Name, Image: req.Msg.Image}
	friend, err := form.Submit(ctx, s.ledger)

	accepted := true
	switch {
	case errors.Is(err, forms.ErrRejected):
		slog.Debug("AddFriend rejected", "error", err)
		s.metrics.Rejected(metrics.FormAddFriend)
		accepted = false
	case err != nil:
		slog.Error("AddFriend failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	state, err := s.state(ctx)
	if err != nil {
		return nil, err
	}

	resp := &AddFriendResponse{Accepted: accepted, State: state}
	if friend != nil {
		resp.Friend = findFriend(state, friend.ID)
	}
	return connect.NewResponse(resp), nil
}

// ToggleAddFriendPanel opens or closes the add-friend panel.
func (s *FriendService) ToggleAddFriendPanel(ctx context.Context, req *connect.Request[ToggleAddFriendPanelRequest]) (*connect.Response[ToggleAddFriendPanelResponse], error) {
	s.ledger.ToggleAddFriendPanel()

	state, err := s.state(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&ToggleAddFriendPanelResponse{State: state}), nil
}

// SelectFriend toggles the selection of a friend.
func (s *FriendService) SelectFriend(ctx context.Context, req *connect.Request[SelectFriendRequest]) (*connect.Response[SelectFriendResponse], error) {
	slog.Info("SelectFriend request received", "friend_id", req.Msg.FriendID)

	if err := s.ledger.SelectFriend(ctx, req.Msg.FriendID); err != nil {
		if errors.Is(err, ledger.ErrFriendNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		slog.Error("SelectFriend failed", "friend_id", req.Msg.FriendID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	state, err := s.state(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&SelectFriendResponse{State: state}), nil
}

// SplitBill submits the split-bill form for the selected friend.
func (s *FriendService) SplitBill(ctx context.Context, req *connect.Request[SplitBillRequest]) (*connect.Response[SplitBillResponse], error) {
	slog.Info("SplitBill request received",
		"bill", req.Msg.Bill,
		"paid_by_user", req.Msg.PaidByUser,
		"payer", req.Msg.Payer,
	)

	snap, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if snap.Selected == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ledger.ErrNoSelection)
	}

	form := forms.SplitBill{
		Bill:       req.Msg.Bill,
		PaidByUser: req.Msg.PaidByUser,
		Payer:      models.Payer(req.Msg.Payer),
	}
	friend, err := form.Submit(ctx, s.ledger)

	accepted := true
	switch {
	case errors.Is(err, forms.ErrRejected):
		slog.Debug("SplitBill rejected", "error", err)
		s.metrics.Rejected(metrics.FormSplitBill)
		accepted = false
	case errors.Is(err, ledger.ErrNoSelection):
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	case err != nil:
		slog.Error("SplitBill failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	state, err := s.state(ctx)
	if err != nil {
		return nil, err
	}

	resp := &SplitBillResponse{Accepted: accepted, State: state}
	if friend != nil {
		resp.Friend = findFriend(state, friend.ID)
	}
	return connect.NewResponse(resp), nil
}

// state converts a ledger snapshot into its wire form.
func (s *FriendService) state(ctx context.Context) (State, error) {
	snap, err := s.ledger.Snapshot(ctx)
	if err != nil {
		slog.Error("Snapshot failed", "error", err)
		return State{}, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to read ledger: %w", err))
	}

	rows := view.FriendList(snap)
	friends := make([]Friend, len(rows))
	for i, row := range rows {
		friends[i] = Friend{
			ID:       row.ID,
			Name:     row.Name,
			Image:    row.Image,
			Balance:  snap.Friends[i].Balance.String(),
			Message:  row.Message,
			Tone:     string(row.Tone),
			Selected: row.Selected,
		}
	}

	summary := view.SummaryOf(snap)
	state := State{
		Friends:       friends,
		ShowAddFriend: snap.ShowAddFriend,
		Summary: Summary{
			OwedToUser: summary.OwedToUser,
			UserOwes:   summary.UserOwes,
			Message:    summary.Message,
		},
	}
	if snap.Selected != nil {
		id := snap.Selected.ID
		state.SelectedID = &id
	}
	return state, nil
}

func findFriend(state State, id int) *Friend {
	for i := range state.Friends {
		if state.Friends[i].ID == id {
			f := state.Friends[i]
			return &f
		}
	}
	return nil
}
