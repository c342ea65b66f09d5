package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/inventory"
	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service inventory.InventoryUseCase
	now     func() time.Time
}

func NewInventoryHandler(service inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{service: service, now: time.Now}
}

func (h *InventoryHandler) Register(router *gin.RouterGroup) {
	router.GET("/manufacturers", h.listManufacturers)
	router.POST("/manufacturers", h.createManufacturer)

	router.GET("/aircraft_types", h.listAircraftTypes)
	router.POST("/aircraft_types", h.createAircraftType)

	router.GET("/aircraft", h.listAircraft)
	router.POST("/aircraft", h.createAircraft)
	router.GET("/aircraft/:id", h.getAircraft)
	router.PUT("/aircraft/:id", h.updateAircraft)

	router.GET("/airlines", h.listAirlines)
	router.POST("/airlines", h.createAirline)
	router.GET("/airlines/:iata", h.getAirline)
	router.PUT("/airlines/:iata", h.updateAirline)

	router.GET("/airports", h.listAirports)
	router.POST("/airports", h.createAirport)
	router.GET("/airports/:iata", h.getAirport)
	router.PUT("/airports/:iata", h.updateAirport)

	router.GET("/crew", h.listCrew)
	router.POST("/crew", h.createCrew)
	router.GET("/crew/:id", h.getCrew)
	router.PUT("/crew/:id", h.updateCrew)

	router.GET("/routes", h.listRoutes)
	router.POST("/routes", h.createRoute)
	router.GET("/routes/:id", h.getRoute)
	router.PUT("/routes/:id", h.updateRoute)
}

type manufacturerRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type manufacturerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

func toManufacturer(m domain.Manufacturer) manufacturerResponse {
	return manufacturerResponse{ID: m.ID, Name: m.Name, Country: m.Country}
}

func (h *InventoryHandler) listManufacturers(c *gin.Context) {
	list, err := h.service.ListManufacturers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toManufacturer))
}

func (h *InventoryHandler) createManufacturer(c *gin.Context) {
	var req manufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	m := &domain.Manufacturer{Name: req.Name, Country: req.Country}
	if err := h.service.CreateManufacturer(c.Request.Context(), m); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toManufacturer(*m))
}

type aircraftTypeRequest struct {
	Name         string `json:"name" binding:"required"`
	Manufacturer int64  `json:"manufacturer" binding:"required"`
}

type aircraftTypeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
}

func toAircraftType(t domain.AircraftType) aircraftTypeResponse {
	return aircraftTypeResponse{ID: t.ID, Name: t.Name, Manufacturer: t.ManufacturerName}
}

func (h *InventoryHandler) listAircraftTypes(c *gin.Context) {
	list, err := h.service.ListAircraftTypes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toAircraftType))
}

func (h *InventoryHandler) createAircraftType(c *gin.Context) {
	var req aircraftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	t := &domain.AircraftType{Name: req.Name, ManufacturerID: req.Manufacturer}
	if err := h.service.CreateAircraftType(c.Request.Context(), t); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": t.ID, "name": t.Name, "manufacturer": t.ManufacturerID})
}

type aircraftRequest struct {
	Registration   string `json:"registration" binding:"required"`
	ProductionYear int    `json:"production_year" binding:"required"`
	Rows           int    `json:"rows" binding:"required"`
	SeatsInRow     int    `json:"seats_in_row" binding:"required"`
	AircraftType   int64  `json:"aircraft_type" binding:"required"`
}

type aircraftListResponse struct {
	ID             int64  `json:"id"`
	Registration   string `json:"registration"`
	ProductionYear int    `json:"production_year"`
	Capacity       int    `json:"capacity"`
	AircraftType   string `json:"aircraft_type"`
}

type aircraftDetailResponse struct {
	aircraftListResponse
	Rows       int `json:"rows"`
	SeatsInRow int `json:"seats_in_row"`
	Age        int `json:"age"`
}

func toAircraftList(a domain.Aircraft) aircraftListResponse {
	return aircraftListResponse{
		ID:             a.ID,
		Registration:   a.Registration,
		ProductionYear: a.ProductionYear,
		Capacity:       a.Capacity(),
		AircraftType:   a.AircraftTypeName,
	}
}

func (h *InventoryHandler) toAircraftDetail(a domain.Aircraft) aircraftDetailResponse {
	return aircraftDetailResponse{
		aircraftListResponse: toAircraftList(a),
		Rows:                 a.Rows,
		SeatsInRow:           a.SeatsInRow,
		Age:                  a.Age(h.now()),
	}
}

func (h *InventoryHandler) listAircraft(c *gin.Context) {
	types, err := queryIDs(c, "types")
	if err != nil {
		writeError(c, err)
		return
	}
	list, err := h.service.ListAircraft(c.Request.Context(), types)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toAircraftList))
}

func (h *InventoryHandler) getAircraft(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	a, err := h.service.GetAircraft(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toAircraftDetail(*a))
}

func (h *InventoryHandler) createAircraft(c *gin.Context) {
	var req aircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	a, err := h.service.CreateAircraft(c.Request.Context(), req.toDomain(0))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toAircraftDetail(*a))
}

func (h *InventoryHandler) updateAircraft(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req aircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	a, err := h.service.UpdateAircraft(c.Request.Context(), req.toDomain(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toAircraftDetail(*a))
}

func (r aircraftRequest) toDomain(id int64) *domain.Aircraft {
	return &domain.Aircraft{
		ID:             id,
		Registration:   r.Registration,
		ProductionYear: r.ProductionYear,
		Rows:           r.Rows,
		SeatsInRow:     r.SeatsInRow,
		AircraftTypeID: r.AircraftType,
	}
}

type airlineBody struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" binding:"required"`
	IATACode string `json:"iata_code"`
	ICAOCode string `json:"icao_code"`
	Callsign string `json:"callsign"`
	Country  string `json:"country" binding:"required"`
	Notes    string `json:"notes"`
}

func toAirline(a domain.Airline) airlineBody {
	return airlineBody{ID: a.ID, Name: a.Name, IATACode: a.IATACode, ICAOCode: a.ICAOCode, Callsign: a.Callsign, Country: a.Country, Notes: a.Notes}
}

func (b airlineBody) toDomain() *domain.Airline {
	return &domain.Airline{Name: b.Name, IATACode: b.IATACode, ICAOCode: b.ICAOCode, Callsign: b.Callsign, Country: b.Country, Notes: b.Notes}
}

func (h *InventoryHandler) listAirlines(c *gin.Context) {
	list, err := h.service.ListAirlines(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toAirline))
}

func (h *InventoryHandler) getAirline(c *gin.Context) {
	a, err := h.service.GetAirline(c.Request.Context(), c.Param("iata"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirline(*a))
}

func (h *InventoryHandler) createAirline(c *gin.Context) {
	var req airlineBody
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	a := req.toDomain()
	if err := h.service.CreateAirline(c.Request.Context(), a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirline(*a))
}

func (h *InventoryHandler) updateAirline(c *gin.Context) {
	var req airlineBody
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	a := req.toDomain()
	if err := h.service.UpdateAirline(c.Request.Context(), c.Param("iata"), a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirline(*a))
}

type airportBody struct {
	ID          int64  `json:"id"`
	IATACode    string `json:"iata_code"`
	ICAOCode    string `json:"icao_code"`
	Name        string `json:"name" binding:"required"`
	NearestCity string `json:"nearest_city" binding:"required"`
	Info        string `json:"info"`
}

func toAirport(a domain.Airport) airportBody {
	return airportBody{ID: a.ID, IATACode: a.IATACode, ICAOCode: a.ICAOCode, Name: a.Name, NearestCity: a.NearestCity, Info: a.Info}
}

func (b airportBody) toDomain() *domain.Airport {
	return &domain.Airport{IATACode: b.IATACode, ICAOCode: b.ICAOCode, Name: b.Name, NearestCity: b.NearestCity, Info: b.Info}
}

func (h *InventoryHandler) listAirports(c *gin.Context) {
	list, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toAirport))
}

func (h *InventoryHandler) getAirport(c *gin.Context) {
	a, err := h.service.GetAirport(c.Request.Context(), c.Param("iata"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirport(*a))
}

func (h *InventoryHandler) createAirport(c *gin.Context) {
	var req airportBody
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	a := req.toDomain()
	if err := h.service.CreateAirport(c.Request.Context(), a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirport(*a))
}

func (h *InventoryHandler) updateAirport(c *gin.Context) {
	var req airportBody
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	a := req.toDomain()
	if err := h.service.UpdateAirport(c.Request.Context(), c.Param("iata"), a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirport(*a))
}

type crewRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	LicenseNumber string `json:"license_number" binding:"required"`
}

type crewListResponse struct {
	ID            int64  `json:"id"`
	FullName      string `json:"full_name"`
	LicenseNumber string `json:"license_number"`
}

type crewDetailResponse struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	LicenseNumber string `json:"license_number"`
}

func toCrewList(c domain.Crew) crewListResponse {
	return crewListResponse{ID: c.ID, FullName: c.FullName(), LicenseNumber: c.LicenseNumber}
}

func toCrewDetail(c domain.Crew) crewDetailResponse {
	return crewDetailResponse{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, LicenseNumber: c.LicenseNumber}
}

func (h *InventoryHandler) listCrew(c *gin.Context) {
	list, err := h.service.ListCrew(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toCrewList))
}

func (h *InventoryHandler) getCrew(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	crew, err := h.service.GetCrew(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCrewDetail(*crew))
}

func (h *InventoryHandler) createCrew(c *gin.Context) {
	var req crewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	crew := &domain.Crew{FirstName: req.FirstName, LastName: req.LastName, LicenseNumber: req.LicenseNumber}
	if err := h.service.CreateCrew(c.Request.Context(), crew); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCrewDetail(*crew))
}

func (h *InventoryHandler) updateCrew(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req crewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	crew := &domain.Crew{ID: id, FirstName: req.FirstName, LastName: req.LastName, LicenseNumber: req.LicenseNumber}
	if err := h.service.UpdateCrew(c.Request.Context(), crew); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCrewDetail(*crew))
}

type routeRequest struct {
	Source      int64 `json:"source" binding:"required"`
	Destination int64 `json:"destination" binding:"required"`
	Distance    int   `json:"distance" binding:"required"`
}

type routeListResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Distance int    `json:"distance"`
}

type routeDetailResponse struct {
	ID          int64       `json:"id"`
	Source      airportBody `json:"source"`
	Destination airportBody `json:"destination"`
	Distance    int         `json:"distance"`
}

func toRouteList(r domain.Route) routeListResponse {
	return routeListResponse{ID: r.ID, Name: r.Name(), Distance: r.Distance}
}

func toRouteDetail(r domain.Route) routeDetailResponse {
	return routeDetailResponse{ID: r.ID, Source: toAirport(r.Source), Destination: toAirport(r.Destination), Distance: r.Distance}
}

func (h *InventoryHandler) listRoutes(c *gin.Context) {
	list, err := h.service.ListRoutes(c.Request.Context(), queryList(c, "sources"), queryList(c, "destinations"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toRouteList))
}

func (h *InventoryHandler) getRoute(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	r, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRouteDetail(*r))
}

func (h *InventoryHandler) createRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	r, err := h.service.CreateRoute(c.Request.Context(), &domain.Route{SourceID: req.Source, DestinationID: req.Destination, Distance: req.Distance})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRouteDetail(*r))
}

func (h *InventoryHandler) updateRoute(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	r, err := h.service.UpdateRoute(c.Request.Context(), &domain.Route{ID: id, SourceID: req.Source, DestinationID: req.Destination, Distance: req.Distance})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRouteDetail(*r))
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
