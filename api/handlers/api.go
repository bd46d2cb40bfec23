package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/pharmassist/pharmassist-api/api"
	"github.com/pharmassist/pharmassist-api/api/dispatch"
	"github.com/pharmassist/pharmassist-api/api/scheduler"
	"github.com/pharmassist/pharmassist-api/config"
	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/models"
	"github.com/pharmassist/pharmassist-api/notify"
)

// App stores the router, db connection and background workers, so it can be
// reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	Notifier  *ReminderNotifier
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	api.SetupGoGuardian()

	r := mux.NewRouter()

	mailer := notify.NewSendGridMailer()

	userDB := databases.NewUserDatabase(a.dbHelper)
	medicineDB := databases.NewMedicineDatabase(a.dbHelper)
	orderDB := databases.NewOrderDatabase(a.dbHelper)
	prescriptionDB := databases.NewPrescriptionDatabase(a.dbHelper)
	deliveryDB := databases.NewDeliveryDatabase(a.dbHelper)
	lockDB := databases.NewSchedulerLockDatabase(a.dbHelper)

	dispatcher := dispatch.New(deliveryDB, userDB, nil)

	auth := Auth{DB: userDB, Mailer: mailer}
	med := Medicine{DB: medicineDB}
	order := Order{DB: orderDB, UDB: userDB, Dispatcher: dispatcher, Mailer: mailer}
	rx := Prescription{DB: prescriptionDB, Dispatcher: dispatcher}
	delivery := Delivery{DB: deliveryDB, ODB: orderDB, Dispatcher: dispatcher}
	payment := Payment{}

	var store ImageStore
	if cs, err := NewCloudinaryStore(); err != nil {
		zap.S().With(err).Warn("cloudinary store unavailable, prescription upload disabled")
	} else {
		store = cs
	}
	intake := Intake{DB: prescriptionDB, Store: store, Extract: NewHTTPTextExtractor()}

	hub := NewReminderHub()
	a.Notifier = NewReminderNotifier(medicineDB, hub)
	a.Scheduler = scheduler.NewScheduler(medicineDB, userDB, lockDB, mailer, a.Config.ReminderTimezone)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	// the websocket route lives outside this subrouter so the deadline never
	// cuts a live reminder connection
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/auth/register", http.HandlerFunc(auth.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/login", http.HandlerFunc(auth.LoginHandler)).Methods("POST")

	apiCreate.Handle("/medicine", patientOnly(med.MedicinesByUserHandler)).Methods("GET")
	apiCreate.Handle("/medicine", patientOnly(med.CreateMedicineHandler)).Methods("POST")
	apiCreate.Handle("/medicine/{medicine_id}/take", patientOnly(med.TakeDoseHandler)).Methods("PATCH")
	apiCreate.Handle("/medicine/{medicine_id}", patientOnly(med.DeleteMedicineHandler)).Methods("DELETE")

	apiCreate.Handle("/orders", patientOnly(order.OrdersByUserHandler)).Methods("GET")
	apiCreate.Handle("/orders", patientOnly(order.CreateOrderHandler)).Methods("POST")
	apiCreate.Handle("/orders/all", pharmacistOnly(order.AllOrdersHandler)).Methods("GET")
	apiCreate.Handle("/orders/{order_id}/status", pharmacistOnly(order.UpdateOrderStatusHandler)).Methods("PATCH")

	apiCreate.Handle("/prescriptions", patientOnly(rx.PrescriptionsByUserHandler)).Methods("GET")
	apiCreate.Handle("/prescriptions/all", pharmacistOnly(rx.AllPrescriptionsHandler)).Methods("GET")
	apiCreate.Handle("/prescriptions/{prescription_id}/status", pharmacistOnly(rx.UpdatePrescriptionStatusHandler)).Methods("PATCH")

	apiCreate.Handle("/ocr/upload", patientOnly(intake.UploadPrescriptionHandler)).Methods("POST")

	apiCreate.Handle("/delivery/my-tasks", deliveryOnly(delivery.MyTasksHandler)).Methods("GET")
	apiCreate.Handle("/delivery/create", api.Middleware(http.HandlerFunc(delivery.CreateDeliveryHandler))).Methods("POST")
	apiCreate.Handle("/delivery/{delivery_id}/status", deliveryOnly(delivery.UpdateDeliveryStatusHandler)).Methods("PATCH")

	apiCreate.Handle("/payments/create-payment-intent", api.Middleware(http.HandlerFunc(payment.CreatePaymentIntentHandler))).Methods("POST")

	// websocket auth rides on a token query param, so it bypasses the
	// bearer middleware
	r.HandleFunc("/ws/reminders", hub.HandleRemindersWebSocket)

	return r
}

func patientOnly(h http.HandlerFunc) http.Handler {
	return api.Middleware(api.RequireRole(models.RolePatient, h))
}

func pharmacistOnly(h http.HandlerFunc) http.Handler {
	return api.Middleware(api.RequireRole(models.RolePharmacist, h))
}

func deliveryOnly(h http.HandlerFunc) http.Handler {
	return api.Middleware(api.RequireRole(models.RoleDelivery, h))
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("pharmassist-api has connected to the database")

	// initialize stripe
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		return fmt.Errorf("stripe secret key is not set")
	}
	stripe.Key = stripeKey

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
