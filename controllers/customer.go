package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"punchcard-backend/config"
	"punchcard-backend/models"
	"punchcard-backend/rewards"
	"punchcard-backend/store"
	"punchcard-backend/utils"
)

// SignupInput defines the expected JSON structure for creating a customer.
// At least one of phone/email must be provided.
type SignupInput struct {
	Name  string  `json:"name" binding:"required"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// LookupInput carries a phone or email to resolve to a customer.
type LookupInput struct {
	Identifier string `json:"identifier" binding:"required"`
}

// CustomerController bundles the stores behind the public customer endpoints.
type CustomerController struct {
	customers    store.CustomerStore
	transactions store.TransactionStore
}

func NewCustomerController(customers store.CustomerStore, transactions store.TransactionStore) *CustomerController {
	return &CustomerController{customers: customers, transactions: transactions}
}

// Signup creates a new customer account with zero punches and spend.
func (ctrl *CustomerController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var phone, email *string
	if input.Phone != nil {
		if p := utils.NormalizePhone(*input.Phone); p != "" {
			phone = &p
		}
	}
	if input.Email != nil {
		if e := utils.NormalizeEmail(*input.Email); e != "" {
			email = &e
		}
	}
	if phone == nil && email == nil {
		utils.AbortWithError(c, utils.ValidationError("Phone or email is required"))
		return
	}

	exists, err := ctrl.customers.ContactExists(c.Request.Context(), phone, email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		utils.AbortWithError(c, utils.ConflictError("Customer with this phone or email already exists"))
		return
	}

	customer := &models.Customer{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Phone:      phone,
		Email:      email,
		Punches:    0,
		TotalSpent: 0.0,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := ctrl.customers.Create(c.Request.Context(), customer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":          customer,
		"available_rewards": rewards.AvailableRewards(customer.Punches),
		"next_reward":       rewards.NextRewardFor(customer.Punches),
	})
}

// Lookup finds a customer by phone or email.
func (ctrl *CustomerController) Lookup(c *gin.Context) {
	var input LookupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := ctrl.customers.FindByContact(c.Request.Context(), utils.NormalizePhone(input.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithError(c, utils.NotFoundError("Customer not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	ctrl.respondWithCustomer(c, customer)
}

// GetByID retrieves a customer by its opaque identifier.
func (ctrl *CustomerController) GetByID(c *gin.Context) {
	customer, err := ctrl.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithError(c, utils.NotFoundError("Customer not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	ctrl.respondWithCustomer(c, customer)
}

// respondWithCustomer writes the enriched shape shared by lookup and
// get-by-id: the customer, its most recent transactions, and a reward
// snapshot for the current punch count.
func (ctrl *CustomerController) respondWithCustomer(c *gin.Context, customer *models.Customer) {
	transactions, err := ctrl.transactions.ListByCustomer(
		c.Request.Context(), customer.ID, config.CustomerTransactionsCap)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":          customer,
		"transactions":      transactions,
		"available_rewards": rewards.AvailableRewards(customer.Punches),
		"next_reward":       rewards.NextRewardFor(customer.Punches),
	})
}
