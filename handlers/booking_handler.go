package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/beautyexpress/salon_backend/database"
	"github.com/beautyexpress/salon_backend/models"
	"github.com/beautyexpress/salon_backend/notifications"
	"github.com/beautyexpress/salon_backend/services"
	"github.com/beautyexpress/salon_backend/stats"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

type CreateBookingRequest struct {
	CustomerID    string   `json:"customerId" validate:"required"`
	CustomerName  string   `json:"customerName" validate:"required"`
	CustomerEmail string   `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone string   `json:"customerPhone"`
	ServiceIDs    []string `json:"serviceIds" validate:"required,min=1"`
	StylistID     string   `json:"stylistId" validate:"required"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string   `json:"time" validate:"required"`
	Notes         string   `json:"notes"`
}

// CreateBooking handles the online booking form: the appointment starts
// pending, priced from the service catalog, and both the admin and the
// customer get an in-app notification.
func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var stylist models.Stylist
	if err := database.DB.First(&stylist, "id = ?", req.StylistID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stylist not found"})
	}

	var serviceNames []string
	var totalPrice float64
	totalDuration := 0
	for _, id := range req.ServiceIDs {
		svc, ok := services.LookupService(id)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Unknown service: %s", id)})
		}
		serviceNames = append(serviceNames, svc.Name)
		totalPrice += svc.Price
		totalDuration += svc.Duration
	}

	booking := models.Booking{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Service:       strings.Join(serviceNames, ", "),
		ServiceID:     req.ServiceIDs[0],
		Services:      pq.StringArray(serviceNames),
		Stylist:       stylist.Name,
		StylistID:     stylist.ID.String(),
		Date:          req.Date,
		Time:          req.Time,
		Status:        models.BookingStatusPending,
		Type:          "client",
		Notes:         req.Notes,
		Price:         totalPrice,
		Revenue:       totalPrice,
		Duration:      totalDuration,
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	serviceLabel := strings.Join(serviceNames, ", ")
	notifyAdmins("New Booking Request",
		fmt.Sprintf("%s requested %s with %s", req.CustomerName, serviceLabel, stylist.Name), "booking")
	createNotification(req.CustomerID, "Booking Submitted",
		fmt.Sprintf("Your booking request for %s has been submitted and is pending confirmation.", serviceLabel), "booking")

	if booking.CustomerEmail != "" {
		go notifications.SendEmail(booking.CustomerName, booking.CustomerEmail,
			"Booking Request Received",
			fmt.Sprintf("<h1>Booking Received</h1><p>Hi %s,</p><p>We received your request for %s on %s at %s. You'll get a confirmation shortly.</p>",
				booking.CustomerName, serviceLabel, booking.Date, booking.Time))
	}

	stats.Default.NotifyBookingsChanged()

	return c.Status(fiber.StatusCreated).JSON(booking)
}

type AdminBookingRequest struct {
	CustomerName string  `json:"customerName" validate:"required"`
	Service      string  `json:"service" validate:"required"`
	Stylist      string  `json:"stylist" validate:"required"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string  `json:"time" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
}

// CreateAdminBooking records a walk-in taken at the front desk. In-shop
// bookings are confirmed immediately and carry no customer contact info.
func CreateAdminBooking(c *fiber.Ctx) error {
	var req AdminBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking := models.Booking{
		CustomerName: req.CustomerName,
		Service:      req.Service,
		Stylist:      req.Stylist,
		Date:         req.Date,
		Time:         req.Time,
		Status:       models.BookingStatusConfirmed,
		Amount:       req.Amount,
		Type:         "admin",
		Notes:        "In-shop booking",
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	stats.Default.NotifyBookingsChanged()

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// ListBookings returns all bookings newest-first, with optional status
// filter and customer/service search.
func ListBookings(c *fiber.Ctx) error {
	status := c.Query("status")
	search := strings.TrimSpace(c.Query("search"))

	query := database.DB.Model(&models.Booking{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("customer_name ILIKE ? OR customer_email ILIKE ? OR service ILIKE ?", term, term, term)
	}

	var bookings []models.Booking
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(bookings)
}

// GetClientBookings lists one customer's bookings newest-first.
func GetClientBookings(c *fiber.Ctx) error {
	customerID := c.Params("customerId")

	var bookings []models.Booking
	if err := database.DB.Where("customer_id = ?", customerID).Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(bookings)
}

type UpdateBookingStatusRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=mpesa cash"`
}

// UpdateBookingStatus is the admin lifecycle action. Transitions are a
// business rule enforced by the dashboard, not here; the stored record is
// whatever the admin last chose. Failed writes surface as an error for the
// admin to retry manually; nothing is retried automatically.
func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	booking.Status = req.Status
	if req.PaymentMethod != "" {
		booking.PaymentMethod = req.PaymentMethod
	}
	if err := database.DB.Save(&booking).Error; err != nil {
		log.Printf("Error updating booking status: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking status"})
	}

	if booking.CustomerID != "" {
		createNotification(booking.CustomerID, "Booking "+titleCase(req.Status),
			fmt.Sprintf("Your booking for %s on %s is now %s.", booking.Service, booking.Date, req.Status), "booking")
	}
	if booking.CustomerEmail != "" && req.Status == models.BookingStatusConfirmed {
		go notifications.SendEmail(booking.CustomerName, booking.CustomerEmail,
			"Your Appointment is Confirmed!",
			fmt.Sprintf("<h1>Booking Confirmed</h1><p>Hi %s,</p><p>Your appointment for %s on %s at %s is confirmed. See you soon!</p>",
				booking.CustomerName, booking.Service, booking.Date, booking.Time))
	}

	stats.Default.NotifyBookingsChanged()

	return c.JSON(booking)
}

// ListServices exposes the static catalog and bookable slots.
func ListServices(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"services":  services.Catalog,
		"timeSlots": services.TimeSlots,
	})
}

// RegisterClient upserts a customer profile from the platform auth
// provider. Clients count toward the dashboard's active-customer figure.
func RegisterClient(c *fiber.Ctx) error {
	type ClientRequest struct {
		UID         string `json:"uid" validate:"required"`
		Email       string `json:"email" validate:"omitempty,email"`
		DisplayName string `json:"displayName" validate:"required"`
		Phone       string `json:"phone"`
	}
	var req ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	client := models.Client{
		UID:         req.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		IsClient:    true,
	}
	if err := database.DB.Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save client profile"})
	}

	stats.Default.NotifyClientsChanged()

	return c.Status(fiber.StatusCreated).JSON(client)
}
