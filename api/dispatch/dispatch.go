package dispatch

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/models"
)

// Route details are placeholders until a routing provider is integrated.
// The coordinates follow the pharmacy's service area in Kochi.
var (
	pharmacyLocation = models.PharmacyLocation{
		Lat:  9.9816,
		Lng:  76.2999,
		Name: "PharmaAssist Main Hub",
	}
	customerLocation = models.CustomerLocation{
		Lat:     9.9444,
		Lng:     76.2923,
		Address: "High Street, Kochi",
	}
	defaultDistance      = "6.5 km"
	defaultEstimatedTime = "25 mins"
	defaultEarnings      = 60.0
)

// Dispatcher assigns dispatched orders to delivery agents and records the
// resulting delivery task
type Dispatcher struct {
	DDB    databases.DeliveryDatabase
	UDB    databases.UserDatabase
	Policy AssignmentPolicy
}

// New creates a dispatcher. A nil policy falls back to round-robin.
func New(ddb databases.DeliveryDatabase, udb databases.UserDatabase, policy AssignmentPolicy) *Dispatcher {
	if policy == nil {
		policy = NewRoundRobin()
	}
	return &Dispatcher{DDB: ddb, UDB: udb, Policy: policy}
}

// Dispatch picks an agent and creates a delivery task referencing the
// dispatched order or prescription. When no agent is registered the entity
// stays dispatched without a task and the gap is logged; (nil, nil) signals
// that no-op to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, orderID primitive.ObjectID) (*models.Delivery, error) {
	agents, err := d.UDB.GetUsersByRole(ctx, models.RoleDelivery)
	if err != nil {
		return nil, err
	}
	if len(agents) == 0 {
		zap.S().Infow("no delivery agents available, order left unassigned",
			"orderId", orderID.Hex(),
		)
		return nil, nil
	}

	agent := d.Policy.Select(agents)

	delivery := &models.Delivery{
		OrderID:          orderID,
		AgentID:          agent.ID,
		CustomerLocation: customerLocation,
		PharmacyLocation: pharmacyLocation,
		Status:           models.DeliveryAssigned,
		Distance:         defaultDistance,
		EstimatedTime:    defaultEstimatedTime,
		Earnings:         defaultEarnings,
	}
	if err := d.DDB.CreateDelivery(ctx, delivery); err != nil {
		return nil, err
	}

	zap.S().Infow("delivery task assigned",
		"orderId", orderID.Hex(),
		"agentId", agent.ID.Hex(),
	)
	return delivery, nil
}
