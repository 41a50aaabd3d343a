package database

// Menu item queries
const (
	ListMenuItemsSQL = `
		SELECT id, item_id, name, category, description, original_price, discounted_price, prep_time, status, picture
		FROM menu_items
		ORDER BY category, name`

	GetMenuItemSQL = `
		SELECT id, item_id, name, category, description, original_price, discounted_price, prep_time, status, picture
		FROM menu_items
		WHERE id::text = $1 OR item_id = $1`

	ListMenuItemsByCategorySQL = `
		SELECT id, item_id, name, category, description, original_price, discounted_price, prep_time, status, picture
		FROM menu_items
		WHERE LOWER(category) = LOWER($1)
		ORDER BY name`

	InsertMenuItemSQL = `
		INSERT INTO menu_items (item_id, name, category, description, original_price, discounted_price, prep_time, status, picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (item_id) DO NOTHING`
)

// Dine-in order queries
const (
	InsertDineInOrderSQL = `
		INSERT INTO dine_in_orders (customer_name, table_number, phone_number, notes, payment_method, subtotal, total, items, order_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, customer_name, table_number, created_at, order_status`

	ListDineInOrdersSQL = `
		SELECT id, customer_name, table_number, phone_number, notes, payment_method, subtotal, total, items, order_status, created_at, updated_at
		FROM dine_in_orders
		ORDER BY created_at DESC`

	GetDineInOrderSQL = `
		SELECT id, customer_name, table_number, phone_number, notes, payment_method, subtotal, total, items, order_status, created_at, updated_at
		FROM dine_in_orders
		WHERE id = $1`

	UpdateDineInOrderStatusSQL = `
		UPDATE dine_in_orders
		SET order_status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, customer_name, table_number, order_status, updated_at`
)

// Delivery order queries
const (
	InsertDeliveryOrderSQL = `
		INSERT INTO delivery_orders (customer_name, phone_number, delivery_address, notes, payment_method, subtotal, delivery_fee, total, items, order_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, customer_name, phone_number, created_at, order_status`

	ListDeliveryOrdersSQL = `
		SELECT id, customer_name, phone_number, delivery_address, notes, payment_method, subtotal, delivery_fee, total, items, order_status, created_at, updated_at
		FROM delivery_orders
		ORDER BY created_at DESC`

	GetDeliveryOrderSQL = `
		SELECT id, customer_name, phone_number, delivery_address, notes, payment_method, subtotal, delivery_fee, total, items, order_status, created_at, updated_at
		FROM delivery_orders
		WHERE id = $1`

	UpdateDeliveryOrderStatusSQL = `
		UPDATE delivery_orders
		SET order_status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, customer_name, phone_number, order_status, updated_at`
)
