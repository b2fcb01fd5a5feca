package api

// Status and enum values mirror the upstream franchise API wire format.
type (
	FranchiseApplicationStatus string
	PaymentMethod              string
	SupplyOrderStatus          string
	AppointmentType            string
	AppointmentStatus          string
	SaleChannel                string
	ReportType                 string
	MenuStatus                 string
	CustomerOrderType          string
	CustomerOrderStatus        string
	TruckStatus                string
	IncidentStatus             string
)

const (
	ApplicationPending  FranchiseApplicationStatus = "PENDING"
	ApplicationApproved FranchiseApplicationStatus = "APPROVED"
	ApplicationRejected FranchiseApplicationStatus = "REJECTED"
)

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentCard         PaymentMethod = "CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentPoints       PaymentMethod = "POINTS"
)

const (
	SupplyOrderDraft     SupplyOrderStatus = "DRAFT"
	SupplyOrderConfirmed SupplyOrderStatus = "CONFIRMED"
	SupplyOrderReady     SupplyOrderStatus = "READY"
	SupplyOrderCollected SupplyOrderStatus = "COLLECTED"
)

const (
	AppointmentSupplyPickup AppointmentType = "SUPPLY_PICKUP"
	AppointmentTruckPickup  AppointmentType = "TRUCK_PICKUP"
)

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

const (
	ReportSalesStats ReportType = "SALES_STATS"
	ReportTopItems   ReportType = "TOP_ITEMS"
	ReportRevenue    ReportType = "REVENUE"
)

const (
	TruckAssigned  TruckStatus = "ASSIGNED"
	TruckInService TruckStatus = "IN_SERVICE"
	TruckInRepair  TruckStatus = "IN_REPAIR"
)

const (
	IncidentOpen       IncidentStatus = "OPEN"
	IncidentInProgress IncidentStatus = "IN_PROGRESS"
	IncidentResolved   IncidentStatus = "RESOLVED"
)

// TokenResponse is returned by the login and signup endpoints.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
}

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries the payload for POST /auth/signup.
type Registration struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	Phone       string `json:"phone,omitempty"`
}

// Franchisee is the server-owned identity record of a tenant operator.
type Franchisee struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	CreatedAt   string `json:"createdAt"`
}

// FranchiseePatch updates the current franchisee's profile. Nil fields are
// left untouched by the backend.
type FranchiseePatch struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	CompanyName *string `json:"companyName,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// ProfilePreferences are small cosmetic settings not owned by the backend
// profile record. They live in the local preference store but also appear
// embedded in the admin franchisee detail response.
type ProfilePreferences struct {
	AvatarDataURL string `json:"avatarDataUrl,omitempty"`
	AccentColor   string `json:"accentColor,omitempty"`
}

// FranchiseeDetail is the admin view of a franchisee.
type FranchiseeDetail struct {
	Franchisee  Franchisee          `json:"franchisee"`
	Preferences *ProfilePreferences `json:"preferences,omitempty"`
}

type FranchiseApplication struct {
	ID            int64                      `json:"id"`
	Status        FranchiseApplicationStatus `json:"status"`
	Paid          bool                       `json:"paid"`
	PaymentMethod PaymentMethod              `json:"paymentMethod,omitempty"`
	PaymentRef    string                     `json:"paymentRef,omitempty"`
	Note          string                     `json:"note,omitempty"`
	Franchisee    *Franchisee                `json:"franchisee,omitempty"`
	CreatedAt     string                     `json:"createdAt"`
	UpdatedAt     string                     `json:"updatedAt"`
}

type FranchiseApplicationRequest struct {
	Note string `json:"note"`
}

type FranchiseApplicationPatch struct {
	Paid          *bool          `json:"paid,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentRef    *string        `json:"paymentRef,omitempty"`
}

// FranchiseTerms is the public contractual summary shown to applicants.
type FranchiseTerms struct {
	Version        string `json:"version"`
	EntryFeeText   string `json:"entryFeeText"`
	RoyaltyText    string `json:"royaltyText"`
	SupplyRuleText string `json:"supplyRuleText"`
	Content        string `json:"content"`
}

type Warehouse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

type InventoryItem struct {
	ID                int64  `json:"id"`
	WarehouseID       int64  `json:"warehouseId"`
	Name              string `json:"name"`
	Unit              string `json:"unit"`
	AvailableQuantity int64  `json:"availableQuantity"`
}

type InventoryItemCreate struct {
	Name              string `json:"name"`
	Unit              string `json:"unit"`
	AvailableQuantity int64  `json:"availableQuantity"`
}

type InventoryItemPatch struct {
	AvailableQuantity int64 `json:"availableQuantity"`
}

// ItemAvailability reports how much of one requested item a warehouse holds.
type ItemAvailability struct {
	InventoryItemID   int64  `json:"inventoryItemId"`
	Name              string `json:"name"`
	RequestedQuantity int64  `json:"requestedQuantity"`
	AvailableQuantity int64  `json:"availableQuantity"`
}

// WarehouseAvailability answers whether a warehouse can fulfil a supply order.
type WarehouseAvailability struct {
	WarehouseID   int64              `json:"warehouseId"`
	WarehouseName string             `json:"warehouseName"`
	Sufficient    bool               `json:"sufficient"`
	Items         []ItemAvailability `json:"items"`
}

type SupplyOrder struct {
	ID                int64             `json:"id"`
	Code              string            `json:"code,omitempty"`
	Status            SupplyOrderStatus `json:"status"`
	PickupWarehouseID int64             `json:"pickupWarehouseId,omitempty"`
	FranchiseeID      int64             `json:"franchiseeId,omitempty"`
	Paid              bool              `json:"paid"`
	PaymentMethod     PaymentMethod     `json:"paymentMethod,omitempty"`
	PaymentRef        string            `json:"paymentRef,omitempty"`
	TotalCash         float64           `json:"totalCash,omitempty"`
	CreatedAt         string            `json:"createdAt,omitempty"`
	UpdatedAt         string            `json:"updatedAt"`
}

type SupplyOrderCreate struct {
	PickupWarehouseID int64 `json:"pickupWarehouseId,omitempty"`
}

type SupplyOrderPatch struct {
	PickupWarehouseID *int64             `json:"pickupWarehouseId,omitempty"`
	Status            *SupplyOrderStatus `json:"status,omitempty"`
	Paid              *bool              `json:"paid,omitempty"`
	PaymentMethod     *PaymentMethod     `json:"paymentMethod,omitempty"`
	PaymentRef        *string            `json:"paymentRef,omitempty"`
}

type SupplyOrderItem struct {
	ID              int64 `json:"id"`
	SupplyOrderID   int64 `json:"supplyOrderId"`
	InventoryItemID int64 `json:"inventoryItemId"`
	Quantity        int64 `json:"quantity"`
}

type SupplyOrderItemCreate struct {
	InventoryItemID int64 `json:"inventoryItemId"`
	Quantity        int64 `json:"quantity"`
}

type SupplyOrderItemPatch struct {
	Quantity int64 `json:"quantity"`
}

type Appointment struct {
	ID            int64             `json:"id"`
	Type          AppointmentType   `json:"type"`
	WarehouseID   int64             `json:"warehouseId"`
	FranchiseeID  int64             `json:"franchiseeId,omitempty"`
	SupplyOrderID int64             `json:"supplyOrderId,omitempty"`
	TruckID       int64             `json:"truckId,omitempty"`
	Datetime      string            `json:"datetime"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     string            `json:"createdAt"`
}

type AppointmentCreate struct {
	Type          AppointmentType `json:"type"`
	WarehouseID   int64           `json:"warehouseId"`
	SupplyOrderID int64           `json:"supplyOrderId,omitempty"`
	TruckID       int64           `json:"truckId,omitempty"`
	Datetime      string          `json:"datetime"`
}

type AppointmentPatch struct {
	Datetime *string            `json:"datetime,omitempty"`
	Status   *AppointmentStatus `json:"status,omitempty"`
}

type Truck struct {
	ID                   int64       `json:"id"`
	Name                 string      `json:"name,omitempty"`
	PlateNumber          string      `json:"plateNumber"`
	Status               TruckStatus `json:"status,omitempty"`
	CurrentWarehouseID   int64       `json:"currentWarehouseId,omitempty"`
	CurrentWarehouseName string      `json:"currentWarehouseName,omitempty"`
	AssignedFranchiseeID int64       `json:"assignedFranchiseeId,omitempty"`
}

type TruckCreate struct {
	PlateNumber        string      `json:"plateNumber"`
	CurrentWarehouseID int64       `json:"currentWarehouseId"`
	Status             TruckStatus `json:"status"`
	Name               string      `json:"name,omitempty"`
}

type TruckPatch struct {
	PlateNumber        *string      `json:"plateNumber,omitempty"`
	Name               *string      `json:"name,omitempty"`
	Status             *TruckStatus `json:"status,omitempty"`
	CurrentWarehouseID *int64       `json:"currentWarehouseId,omitempty"`
}

type Incident struct {
	ID               int64          `json:"id"`
	TruckID          int64          `json:"truckId"`
	TruckPlateNumber string         `json:"truckPlateNumber,omitempty"`
	FranchiseeID     int64          `json:"franchiseeId,omitempty"`
	FranchiseeName   string         `json:"franchiseeName,omitempty"`
	Description      string         `json:"description"`
	Status           IncidentStatus `json:"status"`
	CreatedAt        string         `json:"createdAt"`
}

type IncidentCreate struct {
	Description string `json:"description"`
}

type IncidentPatch struct {
	Description *string         `json:"description,omitempty"`
	Status      *IncidentStatus `json:"status,omitempty"`
}

type MaintenanceRecord struct {
	ID          int64  `json:"id"`
	TruckID     int64  `json:"truckId"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type MaintenanceRecordCreate struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

type Sale struct {
	ID          int64       `json:"id"`
	Date        string      `json:"date"`
	MenuItemID  int64       `json:"menuItemId,omitempty"`
	Quantity    int64       `json:"quantity"`
	TotalAmount float64     `json:"totalAmount"`
	Channel     SaleChannel `json:"channel"`
}

// RevenuePoint is one bucket of the revenue time series.
type RevenuePoint struct {
	PeriodStart string  `json:"periodStart"`
	PeriodEnd   string  `json:"periodEnd"`
	Amount      float64 `json:"amount"`
}

// ReportRequest asks the backend to generate a PDF report.
type ReportRequest struct {
	Type         ReportType `json:"type"`
	From         string     `json:"from"`
	To           string     `json:"to"`
	FranchiseeID int64      `json:"franchiseeId,omitempty"`
}

type Menu struct {
	ID        int64      `json:"id"`
	Status    MenuStatus `json:"status"`
	UpdatedAt string     `json:"updatedAt"`
}

type MenuPatch struct {
	Status MenuStatus `json:"status"`
}

type MenuItem struct {
	ID          int64   `json:"id"`
	MenuID      int64   `json:"menuId"`
	Name        string  `json:"name"`
	PriceCash   float64 `json:"priceCash"`
	PointsPrice int64   `json:"pointsPrice,omitempty"`
	Available   bool    `json:"available"`
}

type MenuItemCreate struct {
	Name        string  `json:"name"`
	PriceCash   float64 `json:"priceCash"`
	PointsPrice int64   `json:"pointsPrice,omitempty"`
	Available   bool    `json:"available"`
}

type MenuItemPatch struct {
	Name        *string  `json:"name,omitempty"`
	PriceCash   *float64 `json:"priceCash,omitempty"`
	PointsPrice *int64   `json:"pointsPrice,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

type LoyaltyCard struct {
	ID            int64  `json:"id"`
	CustomerRef   string `json:"customerRef"`
	Code          string `json:"code"`
	PointsBalance int64  `json:"pointsBalance"`
	CreatedAt     string `json:"createdAt"`
}

type LoyaltyCardCreate struct {
	CustomerRef string `json:"customerRef"`
}

type CustomerOrder struct {
	ID            int64               `json:"id"`
	Type          CustomerOrderType   `json:"type"`
	Status        CustomerOrderStatus `json:"status"`
	LoyaltyCardID int64               `json:"loyaltyCardId,omitempty"`
	Paid          bool                `json:"paid"`
	PaymentMethod PaymentMethod       `json:"paymentMethod,omitempty"`
	TotalCash     float64             `json:"totalCash"`
	TotalPoints   int64               `json:"totalPoints"`
	CreatedAt     string              `json:"createdAt"`
	UpdatedAt     string              `json:"updatedAt"`
}

type CustomerOrderCreate struct {
	Type          CustomerOrderType `json:"type"`
	LoyaltyCardID int64             `json:"loyaltyCardId,omitempty"`
}

type CustomerOrderPatch struct {
	Status        *CustomerOrderStatus `json:"status,omitempty"`
	Paid          *bool                `json:"paid,omitempty"`
	PaymentMethod *PaymentMethod       `json:"paymentMethod,omitempty"`
}

type CustomerOrderItem struct {
	ID              int64   `json:"id"`
	CustomerOrderID int64   `json:"customerOrderId"`
	MenuItemID      int64   `json:"menuItemId"`
	Quantity        int64   `json:"quantity"`
	LineCashTotal   float64 `json:"lineCashTotal,omitempty"`
	LinePointsTotal int64   `json:"linePointsTotal,omitempty"`
}

type CustomerOrderItemCreate struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int64 `json:"quantity"`
}

// Ptr returns a pointer to v. It keeps patch literals compact.
func Ptr[T any](v T) *T { return &v }
