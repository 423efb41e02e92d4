package postgres

import (
	"fmt"

	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/changefeed"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/adapters/out/postgres/sequencerepo"
	"marketplace/internal/adapters/out/postgres/shippingrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/adapters/out/postgres/warehouserepo"
	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in creation order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&userrepo.RoleBindingDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.ProductDTO{},
		&paymentrepo.PaymentDTO{},
		&shippingrepo.ShippingDTO{},
		&orderrepo.OrderDTO{},
		&warehouserepo.WarehouseDTO{},
		&sequencerepo.SequenceDTO{},
	}
}

var notifyFunction = fmt.Sprintf(`
CREATE OR REPLACE FUNCTION notify_change() RETURNS trigger AS $$
DECLARE
	row_key text;
BEGIN
	IF TG_OP = 'DELETE' THEN
		row_key := to_jsonb(OLD) ->> TG_ARGV[0];
	ELSE
		row_key := to_jsonb(NEW) ->> TG_ARGV[0];
	END IF;
	PERFORM pg_notify('%s', json_build_object(
		'collection', TG_TABLE_NAME,
		'operation', lower(TG_OP),
		'key', row_key)::text);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql`, changefeed.Channel)

// Migrate creates or updates the schema, installs the change notification
// triggers and seeds the order sequence. It is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	statements := []string{
		notifyFunction,
		`CREATE OR REPLACE TRIGGER products_notify_change
			AFTER INSERT OR UPDATE OR DELETE ON products
			FOR EACH ROW EXECUTE FUNCTION notify_change('product_id')`,
		`CREATE OR REPLACE TRIGGER orders_notify_change
			AFTER INSERT OR UPDATE OR DELETE ON orders
			FOR EACH ROW EXECUTE FUNCTION notify_change('order_id')`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if err := db.Exec(
		"INSERT INTO sequences (name, value) VALUES (?, 0) ON CONFLICT (name) DO NOTHING",
		order.SequenceName,
	).Error; err != nil {
		return fmt.Errorf("seed sequence %s: %w", order.SequenceName, err)
	}

	return nil
}
