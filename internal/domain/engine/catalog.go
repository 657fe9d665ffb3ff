package engine

import (
	"pharmos/internal/core/id"
	"pharmos/internal/domain/model"
)

func applyAddProduct(state *model.AppState, cmd AddProduct) *model.AppState {
	next := shallow(state)
	next.Products = appendCopy(state.Products, cmd.Product)
	return next
}

func applyUpdateProduct(state *model.AppState, cmd UpdateProduct) *model.AppState {
	next := shallow(state)
	products := make([]model.Product, len(state.Products))
	for i, p := range state.Products {
		if p.ID == cmd.Product.ID {
			products[i] = cmd.Product
		} else {
			products[i] = p
		}
	}
	next.Products = products
	return next
}

func applyDeleteProduct(state *model.AppState, cmd DeleteProduct) *model.AppState {
	next := shallow(state)
	next.Products = removeByID(state.Products, func(p model.Product) bool { return p.ID == cmd.ProductID })
	return next
}

func applyAddSupplier(state *model.AppState, cmd AddSupplier) *model.AppState {
	supplier := cmd.Supplier
	supplier.ID = id.NewString()
	supplier.Balance = 0
	next := shallow(state)
	next.Suppliers = appendCopy(state.Suppliers, supplier)
	return next
}

func applyUpdateSupplier(state *model.AppState, cmd UpdateSupplier) *model.AppState {
	next := shallow(state)
	suppliers := make([]model.Supplier, len(state.Suppliers))
	for i, s := range state.Suppliers {
		if s.ID == cmd.Supplier.ID {
			suppliers[i] = cmd.Supplier
		} else {
			suppliers[i] = s
		}
	}
	next.Suppliers = suppliers
	return next
}

func applyDeleteSupplier(state *model.AppState, cmd DeleteSupplier) *model.AppState {
	next := shallow(state)
	next.Suppliers = removeByID(state.Suppliers, func(s model.Supplier) bool { return s.ID == cmd.SupplierID })
	return next
}
