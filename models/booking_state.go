package models

import (
	"errors"

	"github.com/ahmadnzr/fintrack-by-ai/constants"
)

// Transition errors. The terminal-state message is the one surfaced to the
// API caller; the rest describe the specific rejected edge.
var (
	ErrTerminalBooking  = errors.New("cannot modify a cancelled or completed booking")
	ErrAlreadyConfirmed = errors.New("booking is already confirmed")
	ErrCompletePending  = errors.New("cannot complete a booking that was never confirmed")
)

// BookingState định nghĩa interface cho các trạng thái booking.
type BookingState interface {
	Confirm(b *Booking) error
	Cancel(b *Booking) error
	Complete(b *Booking) error
}

// PendingState trạng thái chờ xác nhận.
type PendingState struct{}

func (s *PendingState) Confirm(b *Booking) error {
	b.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(b *Booking) error {
	return ErrCompletePending
}

// ConfirmedState trạng thái đã xác nhận.
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(b *Booking) error {
	return ErrAlreadyConfirmed
}

func (s *ConfirmedState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(b *Booking) error {
	b.Status = constants.BookingStatusCompleted
	return nil
}

// CancelledState trạng thái đã hủy. Terminal: mọi transition đều lỗi.
type CancelledState struct{}

func (s *CancelledState) Confirm(b *Booking) error  { return ErrTerminalBooking }
func (s *CancelledState) Cancel(b *Booking) error   { return ErrTerminalBooking }
func (s *CancelledState) Complete(b *Booking) error { return ErrTerminalBooking }

// CompletedState trạng thái hoàn thành. Terminal: mọi transition đều lỗi.
type CompletedState struct{}

func (s *CompletedState) Confirm(b *Booking) error  { return ErrTerminalBooking }
func (s *CompletedState) Cancel(b *Booking) error   { return ErrTerminalBooking }
func (s *CompletedState) Complete(b *Booking) error { return ErrTerminalBooking }

// GetBookingState trả về state tương ứng với trạng thái booking.
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	default:
		return &PendingState{}
	}
}
