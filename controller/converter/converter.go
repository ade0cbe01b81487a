package converter

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/kylycht/converter/model"
	"github.com/kylycht/converter/service"
	"github.com/rs/zerolog/log"
)

func New(rates service.Rates, base string) *Converter {
	return &Converter{rates: rates, base: base}
}

type Converter struct {
	rates service.Rates // live-or-fallback rate source
	base  string        // base currency rates are requested against
}

// Convert godoc
//
//	@Summary		Convert an amount between two currencies
//	@Description	convert amount from one currency to another using the latest rates
//	@Tags			converter
//	@Param			from	query	string	true	"From Currency" example(EUR)
//	@Param			to		query	string	true	"To Currency"   example(GBP)
//	@Param			amount	query	number	false	"Amount"        example(90)
//	@Success		200	{string}	string "80.000000"
//	@Failure		400	{string}	string "unknown currency: XYZ"
//	@Router			/convert [get]
func (c *Converter) Convert(ctx *fiber.Ctx) error {
	from := ctx.Query("from")
	to := ctx.Query("to")
	amount := ctx.QueryFloat("amount", 1)

	table := c.rates.GetRates(ctx.Context(), c.base)

	log.Debug().Str(from, to).Float64("amount", amount).Msg("converting")

	result, err := table.Convert(from, to, amount)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	_, err = ctx.WriteString(fmt.Sprintf("%f", result))
	if err != nil {
		log.Error().Err(err).Msg("error occurred during result write op")
		return err
	}

	return nil
}

// Rates godoc
//
//	@Summary		Latest rate table
//	@Description	rates for all known currencies relative to the base currency
//	@Tags			converter
//	@Param			base	query	string	false	"Base Currency" example(USD)
//	@Success		200	{object}	model.RateTable
//	@Router			/rates [get]
func (c *Converter) Rates(ctx *fiber.Ctx) error {
	base := ctx.Query("base", c.base)

	return ctx.JSON(c.rates.GetRates(ctx.Context(), base))
}

// Currencies godoc
//
//	@Summary		Supported currencies
//	@Description	currency codes conversion is guaranteed to support even when offline
//	@Tags			converter
//	@Success		200	{array}	string
//	@Router			/currencies [get]
func (c *Converter) Currencies(ctx *fiber.Ctx) error {
	return ctx.JSON(model.Currencies())
}
