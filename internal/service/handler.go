package service

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// FriendServiceName is the fully-qualified name of the friend service.
const FriendServiceName = "splitneat.v1.FriendService"

// Procedure paths of the friend service.
const (
	GetStateProcedure             = "/" + FriendServiceName + "/GetState"
	AddFriendProcedure            = "/" + FriendServiceName + "/AddFriend"
	ToggleAddFriendPanelProcedure = "/" + FriendServiceName + "/ToggleAddFriendPanel"
	SelectFriendProcedure         = "/" + FriendServiceName + "/SelectFriend"
	SplitBillProcedure            = "/" + FriendServiceName + "/SplitBill"
)

// FriendServiceHandler is implemented by FriendService.
type FriendServiceHandler interface {
	GetState(context.Context, *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error)
	AddFriend(context.Context, *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error)
	ToggleAddFriendPanel(context.Context, *connect.Request[ToggleAddFriendPanelRequest]) (*connect.Response[ToggleAddFriendPanelResponse], error)
	SelectFriend(context.Context, *connect.Request[SelectFriendRequest]) (*connect.Response[SelectFriendResponse], error)
	SplitBill(context.Context, *connect.Request[SplitBillRequest]) (*connect.Response[SplitBillResponse], error)
}

// NewFriendServiceHandler builds an HTTP handler serving every procedure of
// the service. It returns the path prefix to mount it on.
func NewFriendServiceHandler(svc FriendServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(GetStateProcedure, connect.NewUnaryHandler(GetStateProcedure, svc.GetState, opts...))
	mux.Handle(AddFriendProcedure, connect.NewUnaryHandler(AddFriendProcedure, svc.AddFriend, opts...))
	mux.Handle(ToggleAddFriendPanelProcedure, connect.NewUnaryHandler(ToggleAddFriendPanelProcedure, svc.ToggleAddFriendPanel, opts...))
	mux.Handle(SelectFriendProcedure, connect.NewUnaryHandler(SelectFriendProcedure, svc.SelectFriend, opts...))
	mux.Handle(SplitBillProcedure, connect.NewUnaryHandler(SplitBillProcedure, svc.SplitBill, opts...))

	return "/" + FriendServiceName + "/", mux
}

// FriendServiceClient calls a remote friend service.
type FriendServiceClient struct {
	getState             *connect.Client[GetStateRequest, GetStateResponse]
	addFriend            *connect.Client[AddFriendRequest, AddFriendResponse]
	toggleAddFriendPanel *connect.Client[ToggleAddFriendPanelRequest, ToggleAddFriendPanelResponse]
	selectFriend         *connect.Client[SelectFriendRequest, SelectFriendResponse]
	splitBill            *connect.Client[SplitBillRequest, SplitBillResponse]
}

// NewFriendServiceClient creates a client for the service at baseURL.
func NewFriendServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *FriendServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &FriendServiceClient{
		getState:             connect.NewClient[GetStateRequest, GetStateResponse](httpClient, baseURL+GetStateProcedure, opts...),
		addFriend:            connect.NewClient[AddFriendRequest, AddFriendResponse](httpClient, baseURL+AddFriendProcedure, opts...),
		toggleAddFriendPanel: connect.NewClient[ToggleAddFriendPanelRequest, ToggleAddFriendPanelResponse](httpClient, baseURL+ToggleAddFriendPanelProcedure, opts...),
		selectFriend:         connect.NewClient[SelectFriendRequest, SelectFriendResponse](httpClient, baseURL+SelectFriendProcedure, opts...),
		splitBill:            connect.NewClient[SplitBillRequest, SplitBillResponse](httpClient, baseURL+SplitBillProcedure, opts...),
	}
}

// GetState calls FriendService.GetState.
func (c *FriendServiceClient) GetState(ctx context.Context, req *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error) {
	return c.getState.CallUnary(ctx, req)
}

// AddFriend calls FriendService.AddFriend.
func (c *FriendServiceClient) AddFriend(ctx context.Context, req *connect.Request[AddFriendRequest]) (*connect.Response[AddFriendResponse], error) {
	return c.addFriend.CallUnary(ctx, req)
}

// ToggleAddFriendPanel calls FriendService.ToggleAddFriendPanel.
func (c *FriendServiceClient) ToggleAddFriendPanel(ctx context.Context, req *connect.Request[ToggleAddFriendPanelRequest]) (*connect.Response[ToggleAddFriendPanelResponse], error) {
	return c.toggleAddFriendPanel.CallUnary(ctx, req)
}

// SelectFriend calls FriendService.SelectFriend.
func (c *FriendServiceClient) SelectFriend(ctx context.Context, req *connect.Request[SelectFriendRequest]) (*connect.Response[SelectFriendResponse], error) {
	return c.selectFriend.CallUnary(ctx, req)
}

// SplitBill calls FriendService.SplitBill.
func (c *FriendServiceClient) SplitBill(ctx context.Context, req *connect.Request[SplitBillRequest]) (*connect.Response[SplitBillResponse], error) {
	return c.splitBill.CallUnary(ctx, req)
}
