package services

import (
	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// RoomStatusEvent is pushed to websocket clients whenever a booking write
// changes a room's derived status, so the room list can update live.
type RoomStatusEvent struct {
	Type   string `json:"type"`
	RoomID uint   `json:"roomId"`
	Status string `json:"status"`
}

// WSNotifier broadcast sự kiện qua websocket.
type WSNotifier struct {
	m *melody.Melody
}

func NewWSNotifier(m *melody.Melody) *WSNotifier {
	return &WSNotifier{m: m}
}

func (n *WSNotifier) NotifyRoomStatus(roomID uint, status string) {
	if n == nil || n.m == nil {
		return
	}

	payload, err := json.Marshal(RoomStatusEvent{
		Type:   "room_status",
		RoomID: roomID,
		Status: status,
	})
	if err != nil {
		return
	}
	n.m.Broadcast(payload)
}
