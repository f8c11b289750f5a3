package bulkimport_test

import (
	"context"
	"errors"

	"github.com/jhoicas/Catalogo-api/internal/application/bulkimport"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia. Permiten inyectar fallas
// por clave para simular errores de almacenamiento item por item.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	items      []*entity.Category
	failCreate map[string]error // título -> error inyectado en Create
	failGet    map[string]error // título -> error inyectado en GetByTitle
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	if err := r.failCreate[c.Title]; err != nil {
		return err
	}
	for _, existing := range r.items {
		if existing.Title == c.Title {
			return domain.ErrCategoryExists
		}
	}
	copied := *c
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByTitle(title string) (*entity.Category, error) {
	if err := r.failGet[title]; err != nil {
		return nil, err
	}
	for _, c := range r.items {
		if c.Title == title {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error { return nil }

func (r *fakeCategoryRepo) ListActive(limit, offset int) ([]*entity.Category, error) {
	return r.items, nil
}

func (r *fakeCategoryRepo) CountActive() (int, error) { return len(r.items), nil }

type fakeProductRepo struct {
	items      []*entity.Product
	failCreate map[string]error // nombre -> error inyectado en Create
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if err := r.failCreate[p.Name]; err != nil {
		return err
	}
	for _, existing := range r.items {
		if existing.Name == p.Name && existing.CategoryID == p.CategoryID {
			return domain.ErrDuplicate
		}
	}
	copied := *p
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByNameAndCategory(name, categoryID string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.Name == name && p.CategoryID == categoryID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return r.items, nil
}

func (r *fakeProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListActive(limit, offset int) ([]*entity.Product, error) {
	return r.items, nil
}

func (r *fakeProductRepo) Delete(id string) error { return nil }

type fakeInventoryRepo struct {
	byProduct  map[string]*entity.ProductInventory
	failCreate map[string]error // productID -> error inyectado
	failAll    error            // error inyectado para cualquier Create
}

func (r *fakeInventoryRepo) Create(inv *entity.ProductInventory) error {
	if r.failAll != nil {
		return r.failAll
	}
	if err := r.failCreate[inv.ProductID]; err != nil {
		return err
	}
	if _, ok := r.byProduct[inv.ProductID]; ok {
		return domain.ErrDuplicate
	}
	copied := *inv
	r.byProduct[inv.ProductID] = &copied
	return nil
}

func (r *fakeInventoryRepo) GetByProductID(productID string) (*entity.ProductInventory, error) {
	return r.byProduct[productID], nil
}

func (r *fakeInventoryRepo) Update(inv *entity.ProductInventory) error {
	r.byProduct[inv.ProductID] = inv
	return nil
}

type fakePriceRepo struct {
	items      []*entity.ProductPrice
	failCreate map[string]error // productID -> error inyectado
}

func (r *fakePriceRepo) Create(p *entity.ProductPrice) error {
	if err := r.failCreate[p.ProductID]; err != nil {
		return err
	}
	copied := *p
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakePriceRepo) GetByID(id string) (*entity.ProductPrice, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePriceRepo) Update(p *entity.ProductPrice) error { return nil }

func (r *fakePriceRepo) ListActiveByProduct(productID string) ([]*entity.ProductPrice, error) {
	var out []*entity.ProductPrice
	for _, p := range r.items {
		if p.ProductID == productID && p.ValidTo == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Runner transaccional falso con semántica de rollback: cada Step y cada lote
// toma un snapshot del store y lo restaura cuando falla, igual que un
// savepoint o un rollback de tx reales. Puede simular la falla de la unidad
// de trabajo de un lote concreto, antes de abrirla o al confirmarla.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	categories *fakeCategoryRepo
	products   *fakeProductRepo
	inventory  *fakeInventoryRepo
	prices     *fakePriceRepo
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories: &fakeCategoryRepo{failCreate: map[string]error{}, failGet: map[string]error{}},
		products:   &fakeProductRepo{failCreate: map[string]error{}},
		inventory:  &fakeInventoryRepo{byProduct: map[string]*entity.ProductInventory{}, failCreate: map[string]error{}},
		prices:     &fakePriceRepo{failCreate: map[string]error{}},
	}
}

type storeSnapshot struct {
	categories []*entity.Category
	products   []*entity.Product
	inventory  map[string]*entity.ProductInventory
	prices     []*entity.ProductPrice
}

func (s *fakeStore) snapshot() storeSnapshot {
	inv := make(map[string]*entity.ProductInventory, len(s.inventory.byProduct))
	for k, v := range s.inventory.byProduct {
		inv[k] = v
	}
	return storeSnapshot{
		categories: append([]*entity.Category(nil), s.categories.items...),
		products:   append([]*entity.Product(nil), s.products.items...),
		inventory:  inv,
		prices:     append([]*entity.ProductPrice(nil), s.prices.items...),
	}
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.categories.items = snap.categories
	s.products.items = snap.products
	s.inventory.byProduct = snap.inventory
	s.prices.items = snap.prices
}

// fakeTx imita la tx de un lote: Step restaura el store al estado previo al
// paso cuando fn falla, como un ROLLBACK TO SAVEPOINT.
type fakeTx struct{ store *fakeStore }

func (t *fakeTx) Categories() repository.CategoryRepository { return t.store.categories }
func (t *fakeTx) Products() repository.ProductRepository { return t.store.products }
func (t *fakeTx) Inventory() repository.InventoryRepository { return t.store.inventory }
func (t *fakeTx) Prices() repository.PriceRepository { return t.store.prices }

func (t *fakeTx) Step(fn func() error) error {
	snap := t.store.snapshot()
	if err := fn(); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

type fakeTxRunner struct {
	store       *fakeStore
	failBatches map[int]bool // número de llamada a Run (desde 1) -> falla antes de abrir la tx
	failCommits map[int]bool // número de llamada a Run (desde 1) -> fn corre pero el commit falla
	calls       int
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(tx bulkimport.CatalogueTx) error) error {
	r.calls++
	if r.failBatches[r.calls] {
		return errors.New("begin transaction: connection reset by peer")
	}
	snap := r.store.snapshot()
	if err := fn(&fakeTx{store: r.store}); err != nil {
		r.store.restore(snap)
		return err
	}
	if r.failCommits[r.calls] {
		r.store.restore(snap)
		return errors.New("commit transaction: connection reset by peer")
	}
	return nil
}
