package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/pharmassist/pharmassist-api/api"
	"github.com/pharmassist/pharmassist-api/config"
	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/models"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ReminderHub tracks connected patients (userId -> *websocket.Conn)
type ReminderHub struct {
	clients map[string]*websocket.Conn
	mutex   sync.Mutex
}

// NewReminderHub creates an empty hub
func NewReminderHub() *ReminderHub {
	return &ReminderHub{clients: make(map[string]*websocket.Conn)}
}

// HandleRemindersWebSocket upgrades the connection and registers the caller.
// The bearer token arrives as a query param because browsers cannot set
// headers on websocket upgrades.
func (h *ReminderHub) HandleRemindersWebSocket(w http.ResponseWriter, r *http.Request) {
	session, err := api.VerifyToken(r.URL.Query().Get("token"))
	if err != nil {
		config.ErrorCode("unauthorized", http.StatusUnauthorized, models.CodeInvalidCredential, w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().With(err).Error("websocket upgrade failed")
		return
	}

	h.mutex.Lock()
	h.clients[session.UserID] = conn
	h.mutex.Unlock()
	zap.S().Debugw("user connected to /ws/reminders", "userId", session.UserID)

	// Drain reads until the peer goes away, then deregister. NextReader fails
	// on close frames and on dropped connections alike, so both paths end here.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}

	h.mutex.Lock()
	delete(h.clients, session.UserID)
	h.mutex.Unlock()
	conn.Close()
	zap.S().Debugw("user disconnected from /ws/reminders", "userId", session.UserID)
}

// Send pushes a reminder event to one connected user. Users without an open
// connection are skipped silently.
func (h *ReminderHub) Send(userID string, payload interface{}) {
	h.mutex.Lock()
	conn, exists := h.clients[userID]
	h.mutex.Unlock()

	if !exists {
		return
	}
	err := conn.WriteJSON(map[string]interface{}{
		"event": "dose_reminder",
		"data":  payload,
	})
	if err != nil {
		zap.S().With(err).Warnw("failed to push reminder, dropping connection", "userId", userID)
		h.mutex.Lock()
		delete(h.clients, userID)
		h.mutex.Unlock()
		conn.Close()
	}
}

// ReminderSender is the push side of the notifier, satisfied by ReminderHub
type ReminderSender interface {
	Send(userID string, payload interface{})
}

// reminderEvent is the payload pushed when a dose comes due
type reminderEvent struct {
	MedicineID primitive.ObjectID `json:"medicineId"`
	Name       string             `json:"name"`
	Dosage     string             `json:"dosage"`
	Time       string             `json:"time"`
}

// ReminderNotifier polls for medicines whose reminder time matches the
// current minute and pushes events over the hub
type ReminderNotifier struct {
	MDB    databases.MedicineDatabase
	Sender ReminderSender

	// lastFired maps medicine id to the calendar minute it last fired, so a
	// medicine fires at most once per scheduled time but comes due again the
	// next day
	lastFired map[string]string
	stop      chan struct{}
}

// NewReminderNotifier wires a notifier to its medicine store and sender
func NewReminderNotifier(mDB databases.MedicineDatabase, sender ReminderSender) *ReminderNotifier {
	return &ReminderNotifier{
		MDB:       mDB,
		Sender:    sender,
		lastFired: make(map[string]string),
		stop:      make(chan struct{}),
	}
}

// Start polls every 30 seconds until Stop is called
func (n *ReminderNotifier) Start() {
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				n.CheckDue(ctx, time.Now())
				cancel()
			case <-n.stop:
				return
			}
		}
	}()
}

// Stop halts the polling loop
func (n *ReminderNotifier) Stop() {
	close(n.stop)
}

// CheckDue pushes a reminder for every medicine scheduled at the current
// minute and returns the number sent
func (n *ReminderNotifier) CheckDue(ctx context.Context, now time.Time) int {
	hhmm := now.Format("15:04")

	medicines, err := n.MDB.GetMedicinesDueAt(ctx, hhmm)
	if err != nil {
		zap.S().With(err).Error("failed to query due medicines")
		return 0
	}

	stamp := now.Format("2006-01-02 15:04")
	sent := 0
	for _, med := range medicines {
		key := med.ID.Hex()
		if n.lastFired[key] == stamp {
			continue
		}
		n.lastFired[key] = stamp
		n.Sender.Send(med.UserID.Hex(), reminderEvent{
			MedicineID: med.ID,
			Name:       med.Name,
			Dosage:     med.Dosage,
			Time:       hhmm,
		})
		sent++
	}
	if sent > 0 {
		zap.S().Debugw("pushed dose reminders", "count", sent, "time", hhmm)
	}
	return sent
}

var _ ReminderSender = (*ReminderHub)(nil)
