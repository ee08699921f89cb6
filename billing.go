package main

import (
	"fmt"
	"net/url"

	"wavevault/utils"
)

// Checkout hands the user off to the hosted payment pages. No payment
// details pass through this client.
type Checkout interface {
	CheckoutURL(planID string) (string, error)
	BillingPortalURL() (string, error)
}

type HostedCheckout struct {
	checkoutURL string
	portalURL   string
}

func NewHostedCheckout(checkoutURL string, portalURL string) *HostedCheckout {
	return &HostedCheckout{
		checkoutURL: checkoutURL,
		portalURL:   portalURL,
	}
}

func (c *HostedCheckout) CheckoutURL(planID string) (string, error) {
	if c.checkoutURL == "" {
		return "", ErrBillingNotConfigured
	}

	if planID == "" {
		return "", ErrNoPlanSelected
	}

	return fmt.Sprintf("%s?plan=%s", c.checkoutURL, url.QueryEscape(planID)), nil
}

func (c *HostedCheckout) BillingPortalURL() (string, error) {
	if c.portalURL == "" {
		return "", ErrBillingNotConfigured
	}

	return c.portalURL, nil
}

func (ctx *Context) Checkout(planID string) error {
	checkoutURL, err := ctx.Billing.CheckoutURL(planID)

	if err != nil {
		return err
	}

	utils.ConsoleAndLogPrintf("Complete your purchase in the browser: %s", checkoutURL)
	return nil
}

func (ctx *Context) BillingPortal() error {
	portalURL, err := ctx.Billing.BillingPortalURL()

	if err != nil {
		return err
	}

	utils.ConsoleAndLogPrintf("Manage your subscription at: %s", portalURL)
	return nil
}
