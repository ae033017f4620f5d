package action_controller

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-storefront/cart"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

// ActionKind names a user action emitted by the rendered page.
type ActionKind string

const (
	KindView           ActionKind = "view"
	KindAddToCart      ActionKind = "add-to-cart"
	KindRemove         ActionKind = "remove"
	KindUpdateQuantity ActionKind = "update-quantity"
	KindPageChange     ActionKind = "page-change"
)

// ActionRequest is the body of POST /Storefront/Actions.
type ActionRequest struct {
	Kind      ActionKind `json:"kind" binding:"required" example:"add-to-cart"`
	ProductID int        `json:"productId" example:"1"`
	Quantity  int        `json:"quantity" example:"2"`
	Page      int        `json:"page" example:"1"`
	Category  string     `json:"category" example:"all"`
	Search    string     `json:"search"`
}

// ActionResponse carries whatever the action re-rendered.
type ActionResponse struct {
	Kind  ActionKind          `json:"kind"`
	HTML  string              `json:"html,omitempty"`
	Cart  *models.CartSummary `json:"cart,omitempty"`
	Badge *views.Badge        `json:"badge,omitempty"`
	Toast string              `json:"toast,omitempty"`
	Token uint64              `json:"token,omitempty"`
}

// action is the per-request state a handler works with.
type action struct {
	gin      *gin.Context
	ctx      context.Context
	cart     *cart.Store
	recorder *cart.Recorder
}

// ActionHandler performs one kind of action.
type ActionHandler func(a *action, req ActionRequest) (ActionResponse, error)
