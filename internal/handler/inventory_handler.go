package handler

import (
	"go-inventory-dash/internal/model"
	"go-inventory-dash/internal/store"

	"github.com/gofiber/fiber/v2"
)

// InventoryHandler exposes the store's read/write contract over HTTP. All
// field validation happens here, through the model constructors, before the
// store is touched; the store itself never rejects.
type InventoryHandler struct {
	store *store.Store
}

func NewInventoryHandler(st *store.Store) *InventoryHandler {
	return &InventoryHandler{store: st}
}

// ---------- Items ----------

func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	return c.JSON(h.store.Items())
}

func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	item, ok := h.store.ItemByID(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
	}
	return c.JSON(item)
}

func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var body model.Item
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := model.NewItem(body)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	created := h.store.AddItem(*item)
	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": created})
}

// UpdateItem replaces the full record. An unknown id is a silent no-op by
// store contract, so the response is 200 either way.
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var body model.Item
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := model.NewItem(body)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	item.ID = c.Params("id")
	h.store.UpdateItem(*item)
	return c.JSON(fiber.Map{"message": "Item updated"})
}

func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	h.store.DeleteItem(c.Params("id"))
	return c.JSON(fiber.Map{"message": "Item deleted"})
}

// ---------- Suppliers ----------

func (h *InventoryHandler) GetSuppliers(c *fiber.Ctx) error {
	return c.JSON(h.store.Suppliers())
}

func (h *InventoryHandler) CreateSupplier(c *fiber.Ctx) error {
	var body model.Supplier
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	supplier, err := model.NewSupplier(body)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	created := h.store.AddSupplier(*supplier)
	return c.Status(201).JSON(fiber.Map{"message": "Supplier created", "data": created})
}

func (h *InventoryHandler) UpdateSupplier(c *fiber.Ctx) error {
	var body model.Supplier
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	supplier, err := model.NewSupplier(body)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	supplier.ID = c.Params("id")
	h.store.UpdateSupplier(*supplier)
	return c.JSON(fiber.Map{"message": "Supplier updated"})
}

func (h *InventoryHandler) DeleteSupplier(c *fiber.Ctx) error {
	h.store.DeleteSupplier(c.Params("id"))
	return c.JSON(fiber.Map{"message": "Supplier deleted"})
}

// ---------- Customers ----------

func (h *InventoryHandler) GetCustomers(c *fiber.Ctx) error {
	return c.JSON(h.store.Customers())
}

func (h *InventoryHandler) CreateCustomer(c *fiber.Ctx) error {
	var body model.Customer
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	customer, err := model.NewCustomer(body)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	created := h.store.AddCustomer(*customer)
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": created})
}

func (h *InventoryHandler) UpdateCustomer(c *fiber.Ctx) error {
	var body model.Customer
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	customer, err := model.NewCustomer(body)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	customer.ID = c.Params("id")
	h.store.UpdateCustomer(*customer)
	return c.JSON(fiber.Map{"message": "Customer updated"})
}

func (h *InventoryHandler) DeleteCustomer(c *fiber.Ctx) error {
	h.store.DeleteCustomer(c.Params("id"))
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}

// ---------- Transactions ----------

func (h *InventoryHandler) GetTransactions(c *fiber.Ctx) error {
	return c.JSON(h.store.Transactions())
}

func (h *InventoryHandler) GetTransaction(c *fiber.Ctx) error {
	tx, ok := h.store.TransactionByID(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(tx)
}

func (h *InventoryHandler) CreateTransaction(c *fiber.Ctx) error {
	var body model.Transaction
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	tx, err := model.NewTransaction(body)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	created := h.store.AddTransaction(*tx)
	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": created})
}
