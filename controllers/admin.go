package controllers

import (
	"errors"
	"fmt"
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

// AdminLoginInput carries the submitted admin PIN.
type AdminLoginInput struct {
	PIN string `json:"pin" binding:"required"`
}

// AddPunchInput records a purchase against a customer.
type AddPunchInput struct {
	CustomerID string  `json:"customer_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
}

// RedeemRewardInput redeems a discount tier for a customer.
type RedeemRewardInput struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Tier       int    `json:"tier" binding:"required"`
}

// AdminController bundles the stores and settings behind the admin endpoints.
type AdminController struct {
	customers    store.CustomerStore
	transactions store.TransactionStore
	settings     *config.Settings
}

func NewAdminController(customers store.CustomerStore, transactions store.TransactionStore, settings *config.Settings) *AdminController {
	return &AdminController{customers: customers, transactions: transactions, settings: settings}
}

// Login verifies the admin PIN.
func (ctrl *AdminController) Login(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.CheckPIN(input.PIN, ctrl.settings.AdminPIN) {
		utils.AbortWithError(c, utils.AuthError("Invalid PIN"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful"})
}

// customerWithRewards annotates a customer with its reward snapshot; the
// embedded fields stay flat in the JSON output.
type customerWithRewards struct {
	models.Customer
	AvailableRewards []rewards.Reward   `json:"available_rewards"`
	NextReward       rewards.NextReward `json:"next_reward"`
}

// ListCustomers returns all customers, newest-created-first.
func (ctrl *AdminController) ListCustomers(c *gin.Context) {
	customers, err := ctrl.customers.List(c.Request.Context(), config.CustomerListCap)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	out := make([]customerWithRewards, 0, len(customers))
	for _, customer := range customers {
		out = append(out, customerWithRewards{
			Customer:         customer,
			AvailableRewards: rewards.AvailableRewards(customer.Punches),
			NextReward:       rewards.NextRewardFor(customer.Punches),
		})
	}

	c.JSON(http.StatusOK, out)
}

// AddPunch converts a purchase amount to punches and credits the customer.
func (ctrl *AdminController) AddPunch(c *gin.Context) {
	var input AddPunchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	ctx := c.Request.Context()

	customer, err := ctrl.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithError(c, utils.NotFoundError("Customer not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	punches := rewards.PunchesForAmount(input.Amount)
	if punches <= 0 {
		utils.AbortWithError(c, utils.ValidationError("Amount must be at least $10 to earn punches"))
		return
	}

	updated, err := ctrl.customers.AddPunches(ctx, customer.ID, punches, input.Amount)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	// The ledger append is a separate write; a crash between the update
	// above and this insert leaves a punch delta without a ledger entry.
	transaction := &models.Transaction{
		ID:           uuid.NewString(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Amount:       input.Amount,
		PunchesAdded: punches,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := ctrl.transactions.Create(ctx, transaction); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":          updated,
		"transaction":       transaction,
		"punches_added":     punches,
		"available_rewards": rewards.AvailableRewards(updated.Punches),
		"next_reward":       rewards.NextRewardFor(updated.Punches),
	})
}

// RedeemReward spends punches on a discount tier.
func (ctrl *AdminController) RedeemReward(c *gin.Context) {
	var input RedeemRewardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	ctx := c.Request.Context()

	customer, err := ctrl.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithError(c, utils.NotFoundError("Customer not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	reward, ok := rewards.RewardForTier(input.Tier)
	if !ok {
		utils.AbortWithError(c, utils.ValidationError("Invalid reward tier"))
		return
	}

	if customer.Punches < input.Tier {
		utils.AbortWithError(c, utils.ValidationError(
			fmt.Sprintf("Not enough punches. Need %d, have %d", input.Tier, customer.Punches)))
		return
	}

	updated, err := ctrl.customers.SpendPunches(ctx, customer.ID, input.Tier)
	if err != nil {
		if errors.Is(err, store.ErrInsufficientPunches) {
			// A concurrent redemption spent the balance after the check.
			utils.AbortWithError(c, utils.ValidationError(
				fmt.Sprintf("Not enough punches. Need %d, have %d", input.Tier, customer.Punches)))
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.AbortWithError(c, utils.NotFoundError("Customer not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		}
		return
	}

	transaction := &models.Transaction{
		ID:              uuid.NewString(),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		Amount:          0,
		PunchesAdded:    -input.Tier,
		RewardRedeemed:  &reward.Label,
		DiscountPercent: &reward.Discount,
		CreatedAt:       time.Now().UTC(),
	}
	if _, err := ctrl.transactions.Create(ctx, transaction); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":          updated,
		"transaction":       transaction,
		"reward_redeemed":   reward.Label,
		"punches_used":      input.Tier,
		"available_rewards": rewards.AvailableRewards(updated.Punches),
		"next_reward":       rewards.NextRewardFor(updated.Punches),
	})
}

// ListTransactions returns the global ledger, newest-first.
func (ctrl *AdminController) ListTransactions(c *gin.Context) {
	transactions, err := ctrl.transactions.List(c.Request.Context(), config.TransactionListCap)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, transactions)
}
