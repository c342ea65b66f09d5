package api

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	Inventory *InventoryHandler
	Flights   *FlightHandler
	Orders    *OrderHandler
	Payments  *PaymentHandler
	Users     UserLookup
}

// NewRouter assembles the HTTP surface:
//
//	/api/airport/...   inventory, flights and orders (authenticated, staff writes inventory)
//	/api/payments/...  payments (authenticated) plus the public success/cancel redirects
func NewRouter(h Handlers) *gin.Engine {
	useJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery(), RequestLog(), Tracing(), Identity(h.Users))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	airport := r.Group("/api/airport", RequireUser())
	h.Orders.Register(airport)

	inventory := airport.Group("", StaffWrites())
	h.Inventory.Register(inventory)
	h.Flights.Register(inventory)

	payments := r.Group("/api/payments")
	h.Payments.RegisterPublic(payments)
	h.Payments.Register(payments.Group("", RequireUser()))

	return r
}

// useJSONFieldNames makes binding errors report json field names.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
