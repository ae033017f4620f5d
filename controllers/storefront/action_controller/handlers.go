package action_controller

import (
	"github.com/go-faster/errors"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

func (ctl *Controller) view(a *action, req ActionRequest) (ActionResponse, error) {
	if req.ProductID < 1 {
		return ActionResponse{}, errors.Wrapf(services.ErrInvalidID, "id %d", req.ProductID)
	}
	markup, token, err := ctl.pages.RenderDetail(a.gin, req.ProductID)
	if err != nil {
		return ActionResponse{}, err
	}
	return ActionResponse{HTML: markup, Token: token}, nil
}

func (ctl *Controller) addToCart(a *action, req ActionRequest) (ActionResponse, error) {
	product, err := ctl.products.GetProductByID(a.ctx, req.ProductID)
	if err != nil {
		return ActionResponse{}, err
	}
	if err := a.cart.AddItem(a.ctx, product); err != nil {
		return ActionResponse{}, err
	}
	return ctl.cartResponse(a)
}

func (ctl *Controller) remove(a *action, req ActionRequest) (ActionResponse, error) {
	if err := a.cart.RemoveItem(a.ctx, req.ProductID); err != nil {
		return ActionResponse{}, err
	}
	return ctl.cartResponse(a)
}

func (ctl *Controller) updateQuantity(a *action, req ActionRequest) (ActionResponse, error) {
	if err := a.cart.UpdateQuantity(a.ctx, req.ProductID, req.Quantity); err != nil {
		return ActionResponse{}, err
	}
	return ctl.cartResponse(a)
}

func (ctl *Controller) pageChange(a *action, req ActionRequest) (ActionResponse, error) {
	state := models.FilterState{Category: req.Category, Search: req.Search, Page: req.Page}
	markup, err := ctl.pages.RenderGrid(a.gin, state)
	if err != nil {
		return ActionResponse{}, err
	}
	return ActionResponse{HTML: markup}, nil
}

// cartResponse re-renders the cart panel after a mutation.
func (ctl *Controller) cartResponse(a *action) (ActionResponse, error) {
	c := a.cart.Cart()
	if a.recorder.Changed {
		c = a.recorder.Last
	}
	panel := views.NewCartPanel(c)
	markup, err := ctl.renderer.RenderString(views.CartTemplate, panel)
	if err != nil {
		return ActionResponse{}, err
	}
	summary := c.Summary()
	return ActionResponse{
		HTML:  markup,
		Cart:  &summary,
		Badge: &panel.Badge,
		Toast: a.recorder.Toast(),
	}, nil
}
