package store

import "shophood/internal/domain"

// Action is a state transition request. Every recognized action produces a
// defined next state; anything else is a no-op.
type Action interface{ isAction() }

type Login struct{ User domain.User }

type Logout struct{}

type AddUser struct{ User domain.User }

// UpdateUser replaces the user matched by id and mirrors the change into the
// session user when it is the same account.
type UpdateUser struct{ User domain.User }

type AddBusinessProfile struct{ Profile domain.BusinessProfile }

type UpdateBusinessProfile struct{ Profile domain.BusinessProfile }

type AddProduct struct{ Product domain.Product }

type UpdateProduct struct{ Product domain.Product }

type DeleteProduct struct{ ID string }

type AddMessage struct{ Message domain.Message }

// MarkMessageRead flips the read flag false->true; already-read and unknown
// ids are safe no-ops.
type MarkMessageRead struct{ ID string }

type AddAdSlot struct{ Ad domain.AdSlot }

type UpdateAdSlot struct{ Ad domain.AdSlot }

// LoadState substitutes the entire state (initial load, batch edits).
type LoadState struct{ State State }

func (Login) isAction()                 {}
func (Logout) isAction()                {}
func (AddUser) isAction()               {}
func (UpdateUser) isAction()            {}
func (AddBusinessProfile) isAction()    {}
func (UpdateBusinessProfile) isAction() {}
func (AddProduct) isAction()            {}
func (UpdateProduct) isAction()         {}
func (DeleteProduct) isAction()         {}
func (AddMessage) isAction()            {}
func (MarkMessageRead) isAction()       {}
func (AddAdSlot) isAction()             {}
func (UpdateAdSlot) isAction()          {}
func (LoadState) isAction()             {}
