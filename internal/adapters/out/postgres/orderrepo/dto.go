// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pricing"
	"pizzeria/internal/core/domain/model/product"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items and the pricing strategy are stored as JSON documents: the lines are a
// frozen snapshot of the catalog at composition time, not references into it.
// Subtotal and Total are denormalized at save time for the read side.
type OrderDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID   `gorm:"type:uuid;index"`
	CourierID    *uuid.UUID  `gorm:"type:uuid;index"`
	Destination  LocationDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Status       string      `gorm:"type:varchar(16);index"`
	IsFirstOrder bool
	Items        []byte `gorm:"type:jsonb"`
	Strategy     []byte `gorm:"type:jsonb"`
	Subtotal     string `gorm:"type:varchar(32)"`
	Total        string `gorm:"type:varchar(32)"`
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents the embedded delivery destination within the order table.
type LocationDTO struct {
	X float64 `gorm:"type:double precision"`
	Y float64 `gorm:"type:double precision"`
}

// itemDTO is the JSON shape of a single order line. The full catalog snapshot
// rides along so the line rehydrates without consulting the live menu.
type itemDTO struct {
	PizzaSKU   string           `json:"pizza_sku"`
	PizzaName  string           `json:"pizza_name"`
	PizzaPrice string           `json:"pizza_price"`
	Recipe     []requirementDTO `json:"recipe"`
	Size       string           `json:"size"`
	Toppings   []toppingDTO     `json:"toppings,omitempty"`
	Quantity   int              `json:"quantity"`
}

type toppingDTO struct {
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	Price        string           `json:"price"`
	Requirements []requirementDTO `json:"requirements,omitempty"`
}

type requirementDTO struct {
	Ingredient string `json:"ingredient"`
	Unit       string `json:"unit"`
	Amount     string `json:"amount"`
}

func requirementsToDTO(requirements []inventory.Requirement) []requirementDTO {
	dtos := make([]requirementDTO, 0, len(requirements))
	for _, r := range requirements {
		dtos = append(dtos, requirementDTO{
			Ingredient: r.Ingredient.Name,
			Unit:       r.Ingredient.Unit,
			Amount:     r.Amount.String(),
		})
	}
	return dtos
}

func requirementsFromDTO(dtos []requirementDTO) ([]inventory.Requirement, error) {
	requirements := make([]inventory.Requirement, 0, len(dtos))
	for _, dto := range dtos {
		ingredient, err := inventory.NewIngredient(dto.Ingredient, dto.Unit)
		if err != nil {
			return nil, err
		}

		amount, err := decimal.NewFromString(dto.Amount)
		if err != nil {
			return nil, err
		}

		requirement, err := inventory.NewRequirement(ingredient, amount)
		if err != nil {
			return nil, err
		}
		requirements = append(requirements, requirement)
	}
	return requirements, nil
}

func itemsToJSON(items []order.Item) ([]byte, error) {
	dtos := make([]itemDTO, 0, len(items))
	for _, item := range items {
		pizza := item.Pizza()

		toppings := make([]toppingDTO, 0, len(item.Toppings()))
		for _, topping := range item.Toppings() {
			toppings = append(toppings, toppingDTO{
				SKU:          topping.SKU(),
				Name:         topping.Name(),
				Price:        topping.Price().String(),
				Requirements: requirementsToDTO(topping.Requirements()),
			})
		}

		dtos = append(dtos, itemDTO{
			PizzaSKU:   pizza.SKU(),
			PizzaName:  pizza.Name(),
			PizzaPrice: pizza.DefaultPrice().String(),
			Recipe:     requirementsToDTO(pizza.Recipe()),
			Size:       item.Size().String(),
			Toppings:   toppings,
			Quantity:   item.Quantity(),
		})
	}

	return json.Marshal(dtos)
}

func itemsFromJSON(raw []byte) ([]order.Item, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var dtos []itemDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		price, err := kernel.MoneyFromPersisted(dto.PizzaPrice)
		if err != nil {
			return nil, err
		}

		recipe, err := requirementsFromDTO(dto.Recipe)
		if err != nil {
			return nil, err
		}

		pizza, err := product.NewPizza(dto.PizzaSKU, dto.PizzaName, price, recipe)
		if err != nil {
			return nil, err
		}

		size, err := product.SizeFromString(dto.Size)
		if err != nil {
			return nil, err
		}

		toppings := make([]product.Topping, 0, len(dto.Toppings))
		for _, t := range dto.Toppings {
			toppingPrice, priceErr := kernel.MoneyFromPersisted(t.Price)
			if priceErr != nil {
				return nil, priceErr
			}

			toppingReqs, reqErr := requirementsFromDTO(t.Requirements)
			if reqErr != nil {
				return nil, reqErr
			}

			topping, toppingErr := product.NewTopping(t.SKU, t.Name, toppingPrice, toppingReqs)
			if toppingErr != nil {
				return nil, toppingErr
			}
			toppings = append(toppings, topping)
		}

		item, err := order.NewItem(pizza, size, toppings, dto.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// fromDomain converts an order domain aggregate to its database representation.
// Totals are evaluated at save time; the read side treats them as a snapshot.
func fromDomain(aggregate *order.Order, now time.Time) (OrderDTO, error) {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items, err := itemsToJSON(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	strategy, err := pricing.MarshalStrategy(aggregate.PricingStrategy())
	if err != nil {
		return OrderDTO{}, err
	}

	// A coupon can expire between composition and save; the subtotal then
	// stands in so persistence never fails on a stale promotion.
	total, err := aggregate.FinalTotal(now)
	if err != nil {
		total = aggregate.Subtotal()
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		CourierID:  courierID,
		Destination: LocationDTO{
			X: aggregate.Destination().X(),
			Y: aggregate.Destination().Y(),
		},
		Status:       aggregate.Status().String(),
		IsFirstOrder: aggregate.IsFirstOrder(),
		Items:        items,
		Strategy:     strategy,
		Subtotal:     aggregate.Subtotal().String(),
		Total:        total.String(),
		UpdatedAt:    now,
	}, nil
}

// toDomain converts a database DTO back to an order domain aggregate using
// RestoreOrder. Denormalized totals are ignored; they are recomputed on demand.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	destination, err := kernel.NewLocation(dto.Destination.X, dto.Destination.Y)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items, err := itemsFromJSON(dto.Items)
	if err != nil {
		return nil, err
	}

	strategy, err := pricing.UnmarshalStrategy(dto.Strategy)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, destination, items, status, strategy, courierID, dto.IsFirstOrder)
}
