package repository

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mirtechlab/mt-analytics/domains/order"
	"github.com/mirtechlab/mt-analytics/domains/product"
	"github.com/mirtechlab/mt-analytics/domains/sales"
	"github.com/mirtechlab/mt-analytics/domains/transaction"
	"github.com/mirtechlab/mt-analytics/domains/user"
)

// SeedCounts sizes the generated dataset. Transactions are always one per
// order; fact rows are one per order item with complete joins.
type SeedCounts struct {
	Users    int
	Products int
	Orders   int
	Items    int
}

// DefaultSeedCounts is scaled down from the production dataset so a local
// seed finishes in seconds.
var DefaultSeedCounts = SeedCounts{
	Users:    2500,
	Products: 5000,
	Orders:   3750,
	Items:    11250,
}

const seedBatchSize = 500

var (
	firstNames = []string{"James", "Maria", "Wei", "Aisha", "Carlos", "Yuki", "Elena", "Omar", "Priya", "Lucas",
		"Sofia", "Ahmed", "Nina", "Diego", "Hana", "Ivan", "Amara", "Tom", "Ines", "Raj"}
	lastNames = []string{"Smith", "Garcia", "Chen", "Khan", "Silva", "Tanaka", "Novak", "Hassan", "Patel", "Costa",
		"Muller", "Kim", "Okafor", "Lopez", "Sato", "Petrov", "Diallo", "Brown", "Rossi", "Singh"}
	emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "proton.me", "icloud.com"}

	productAdjectives = []string{"Classic", "Premium", "Compact", "Wireless", "Ergonomic", "Vintage", "Smart", "Ultra", "Eco", "Pro"}
	productNouns      = []string{"Chair", "Headphones", "Backpack", "Lamp", "Keyboard", "Jacket", "Blender", "Sneakers", "Monitor", "Bottle"}
	productCategories = []string{"Electronics", "Furniture", "Clothing", "Kitchen", "Sports", "Shoes", "Garden", "Books", "Toys", "Beauty"}

	streetNames = []string{"Oak", "Maple", "Cedar", "Pine", "Elm", "Birch", "Willow", "Aspen"}
	cityNames   = []string{"Springfield", "Riverton", "Lakewood", "Fairview", "Georgetown", "Arlington", "Clinton", "Salem"}
)

// weighted the way real checkout traffic skews
var (
	orderStatuses  = []string{"delivered", "shipped", "processing", "pending", "cancelled", "refunded"}
	orderWeights   = []int{40, 20, 15, 15, 7, 3}
	paymentMethods = []string{"credit_card", "debit_card", "paypal", "bank_transfer", "crypto"}
	paymentWeights = []int{45, 25, 20, 8, 2}
	txnStatuses    = []string{"completed", "pending", "failed", "refunded"}
	txnWeights     = []int{80, 10, 6, 4}
)

// Seeder populates the five dimension tables with a mock dataset and then
// denormalizes them into fact_sales.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run generates and inserts the full dataset. Existing rows are left in
// place; seeding twice simply grows the tables.
func (s *Seeder) Run(ctx context.Context, counts SeedCounts) error {
	started := time.Now()

	users, err := s.seedUsers(ctx, counts.Users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	products, err := s.seedProducts(ctx, counts.Products)
	if err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	orders, err := s.seedOrders(ctx, counts.Orders, users)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	items, err := s.seedItems(ctx, counts.Items, orders, products)
	if err != nil {
		return fmt.Errorf("seed order items: %w", err)
	}
	txns, err := s.seedTransactions(ctx, orders)
	if err != nil {
		return fmt.Errorf("seed transactions: %w", err)
	}
	factRows, err := s.buildFacts(ctx, users, products, orders, items, txns)
	if err != nil {
		return fmt.Errorf("build fact table: %w", err)
	}

	logrus.Infof("[SEED] Done in %s: %s users, %s products, %s orders, %s items, %s transactions, %s fact rows",
		time.Since(started).Round(time.Millisecond),
		humanize.Comma(int64(len(users))), humanize.Comma(int64(len(products))),
		humanize.Comma(int64(len(orders))), humanize.Comma(int64(len(items))),
		humanize.Comma(int64(len(txns))), humanize.Comma(int64(factRows)))
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context, n int) ([]user.User, error) {
	if n <= 0 {
		return nil, nil
	}
	logrus.Infof("[SEED] Generating %s users...", humanize.Comma(int64(n)))

	// family members share an address
	addressByFamily := make(map[string]string)

	users := make([]user.User, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[s.rng.Intn(len(firstNames))]
		last := lastNames[s.rng.Intn(len(lastNames))]

		address, ok := addressByFamily[last]
		if !ok {
			address = fmt.Sprintf("%d %s St, %s",
				s.rng.Intn(9900)+100,
				streetNames[s.rng.Intn(len(streetNames))],
				cityNames[s.rng.Intn(len(cityNames))])
			addressByFamily[last] = address
		}

		users = append(users, user.User{
			UserID: uuid.New(),
			Name:   first + " " + last,
			Email: fmt.Sprintf("%s.%s%04d@%s",
				strings.ToLower(first), strings.ToLower(last), i,
				emailDomains[s.rng.Intn(len(emailDomains))]),
			Phone:     fmt.Sprintf("+1%010d", s.rng.Int63n(1e10)),
			Address:   address,
			CreatedAt: s.pastTime(730),
		})
	}

	if err := s.db.WithContext(ctx).CreateInBatches(users, seedBatchSize).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Seeder) seedProducts(ctx context.Context, n int) ([]product.Product, error) {
	if n <= 0 {
		return nil, nil
	}
	logrus.Infof("[SEED] Generating %s products...", humanize.Comma(int64(n)))

	seen := make(map[string]bool, n)
	products := make([]product.Product, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s %s %d",
			productAdjectives[s.rng.Intn(len(productAdjectives))],
			productNouns[s.rng.Intn(len(productNouns))],
			s.rng.Intn(1000))
		if seen[name] {
			name = fmt.Sprintf("%s %08x", name, s.rng.Uint32())
		}
		seen[name] = true

		products = append(products, product.Product{
			ProductID: uuid.New(),
			Name:      name,
			Category:  productCategories[s.rng.Intn(len(productCategories))],
			Price:     round2(5 + s.rng.Float64()*49995),
			Stock:     s.rng.Intn(9993) + 8,
			Rating:    round2(1 + s.rng.Float64()*4),
		})
	}

	if err := s.db.WithContext(ctx).CreateInBatches(products, seedBatchSize).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Seeder) seedOrders(ctx context.Context, n int, users []user.User) ([]order.Order, error) {
	if n <= 0 {
		return nil, nil
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%d orders requested but there are no users to assign them to", n)
	}
	logrus.Infof("[SEED] Generating %s orders...", humanize.Comma(int64(n)))

	orders := make([]order.Order, 0, n)
	for i := 0; i < n; i++ {
		orders = append(orders, order.Order{
			OrderID:     uuid.New(),
			UserID:      users[s.rng.Intn(len(users))].UserID,
			TotalAmount: round2(10 + s.rng.Float64()*9990),
			Status:      s.weighted(orderStatuses, orderWeights),
			CreatedAt:   s.pastTime(365),
		})
	}

	if err := s.db.WithContext(ctx).CreateInBatches(orders, seedBatchSize).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Seeder) seedItems(ctx context.Context, n int, orders []order.Order, products []product.Product) ([]order.Item, error) {
	if n <= 0 {
		return nil, nil
	}
	if len(orders) == 0 || len(products) == 0 {
		return nil, fmt.Errorf("%d order items requested but there are no orders or products to reference", n)
	}
	logrus.Infof("[SEED] Generating %s order items...", humanize.Comma(int64(n)))

	items := make([]order.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, order.Item{
			OrderItemID: uuid.New(),
			OrderID:     orders[s.rng.Intn(len(orders))].OrderID,
			ProductID:   products[s.rng.Intn(len(products))].ProductID,
			Quantity:    s.rng.Intn(10) + 1,
			UnitPrice:   round2(5 + s.rng.Float64()*4995),
		})
	}

	if err := s.db.WithContext(ctx).CreateInBatches(items, seedBatchSize).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Seeder) seedTransactions(ctx context.Context, orders []order.Order) ([]transaction.Transaction, error) {
	if len(orders) == 0 {
		return nil, nil
	}
	logrus.Infof("[SEED] Generating %s transactions...", humanize.Comma(int64(len(orders))))

	txns := make([]transaction.Transaction, 0, len(orders))
	for _, o := range orders {
		txns = append(txns, transaction.Transaction{
			TransactionID: uuid.New(),
			OrderID:       o.OrderID,
			Amount:        o.TotalAmount,
			PaymentMethod: s.weighted(paymentMethods, paymentWeights),
			Status:        s.weighted(txnStatuses, txnWeights),
			Timestamp:     s.pastTime(365),
		})
	}

	if err := s.db.WithContext(ctx).CreateInBatches(txns, seedBatchSize).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// buildFacts joins items -> orders -> users/products -> transactions into
// fact_sales, skipping items whose joins are incomplete.
func (s *Seeder) buildFacts(ctx context.Context, users []user.User, products []product.Product,
	orders []order.Order, items []order.Item, txns []transaction.Transaction) (int, error) {
	logrus.Info("[SEED] Building fact_sales...")

	usersByID := make(map[uuid.UUID]user.User, len(users))
	for _, u := range users {
		usersByID[u.UserID] = u
	}
	productsByID := make(map[uuid.UUID]product.Product, len(products))
	for _, p := range products {
		productsByID[p.ProductID] = p
	}
	ordersByID := make(map[uuid.UUID]order.Order, len(orders))
	for _, o := range orders {
		ordersByID[o.OrderID] = o
	}
	txnsByOrder := make(map[uuid.UUID]transaction.Transaction, len(txns))
	for _, t := range txns {
		txnsByOrder[t.OrderID] = t
	}

	facts := make([]sales.FactSale, 0, len(items))
	for _, item := range items {
		o, ok := ordersByID[item.OrderID]
		if !ok {
			continue
		}
		u, ok := usersByID[o.UserID]
		if !ok {
			continue
		}
		p, ok := productsByID[item.ProductID]
		if !ok {
			continue
		}
		t, ok := txnsByOrder[item.OrderID]
		if !ok {
			continue
		}

		facts = append(facts, sales.FactSale{
			FactID: uuid.New(),

			UserID:        u.UserID,
			UserName:      u.Name,
			UserEmail:     u.Email,
			UserPhone:     u.Phone,
			UserAddress:   u.Address,
			UserCreatedAt: u.CreatedAt,

			ProductID:       p.ProductID,
			ProductName:     p.Name,
			ProductCategory: p.Category,
			ProductPrice:    p.Price,
			ProductStock:    p.Stock,
			ProductRating:   p.Rating,

			OrderID:          o.OrderID,
			OrderTotalAmount: o.TotalAmount,
			OrderStatus:      o.Status,
			OrderCreatedAt:   o.CreatedAt,

			OrderItemID:        item.OrderItemID,
			OrderItemQuantity:  item.Quantity,
			OrderItemUnitPrice: item.UnitPrice,

			TransactionID:            t.TransactionID,
			TransactionAmount:        t.Amount,
			TransactionPaymentMethod: t.PaymentMethod,
			TransactionStatus:        t.Status,
			TransactionTimestamp:     t.Timestamp,
		})
	}

	if err := s.db.WithContext(ctx).CreateInBatches(facts, seedBatchSize).Error; err != nil {
		return 0, err
	}
	return len(facts), nil
}

func (s *Seeder) weighted(values []string, weights []int) string {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := s.rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return values[i]
		}
		n -= w
	}
	return values[len(values)-1]
}

func (s *Seeder) pastTime(maxDays int) time.Time {
	return time.Now().UTC().Add(-time.Duration(s.rng.Int63n(int64(maxDays) * int64(24*time.Hour))))
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
