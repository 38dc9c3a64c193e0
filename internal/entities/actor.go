package entities

type Role string

const (
	RoleCustomer      Role = "customer"
	RoleManager       Role = "manager"
	RoleDriver        Role = "driver"
	RoleFactoryWorker Role = "factory_worker"
	RoleAdmin         Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleManager, RoleDriver, RoleFactoryWorker, RoleAdmin:
		return true
	}
	return false
}

// Actor - аутентифицированный пользователь, от имени которого выполняется операция
type Actor struct {
	UserID int64
	Role   Role
}

type Action string

const (
	ActionListFactoryOrders Action = "factory.orders.list"
	ActionClaimOrder        Action = "factory.orders.claim"
	ActionMarkOrderReady    Action = "factory.orders.mark_ready"

	ActionListReadyOrders Action = "driver.orders.list"
	ActionTakeOrder       Action = "driver.orders.take"
	ActionListShipments   Action = "driver.shipments.list"
	ActionUpdateShipment  Action = "driver.shipments.update"

	ActionListAllOrders      Action = "manager.orders.list"
	ActionCreateOfflineOrder Action = "manager.orders.create"
)

// roleActions - наборы возможностей ролей. Без иерархии, admin обрабатывается отдельно в Allow.
var roleActions = map[Role]map[Action]struct{}{
	RoleFactoryWorker: {
		ActionListFactoryOrders: {},
		ActionClaimOrder:        {},
		ActionMarkOrderReady:    {},
	},
	RoleDriver: {
		ActionListReadyOrders: {},
		ActionTakeOrder:       {},
		ActionListShipments:   {},
		ActionUpdateShipment:  {},
	},
	RoleManager: {
		ActionListAllOrders:      {},
		ActionCreateOfflineOrder: {},
	},
}

// Allow сообщает, разрешено ли роли выполнять действие. Admin разрешено всё.
func Allow(role Role, action Action) bool {
	if role == RoleAdmin {
		return true
	}
	_, ok := roleActions[role][action]
	return ok
}
