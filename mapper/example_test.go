package mapper_test

import (
	"fmt"

	"bean-mapper/engine"
	"bean-mapper/factory"
	"bean-mapper/iterables"
	"bean-mapper/mapper"
)

type OrderStatus string

const (
	StatusPending OrderStatus = "PENDING"
	StatusShipped OrderStatus = "SHIPPED"
)

type OrderItem struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice int64
}

type Order struct {
	ID         int64
	CustomerID int64
	Status     OrderStatus
	TotalCents int64
	Items      []OrderItem
}

type OrderItemView struct {
	Name     string
	Quantity int64
}

type OrderView struct {
	ID          int64
	Customer_ID int64
	Status      string
	Total_Cents float64
	Items       []OrderItemView
}

func ExampleBean() {
	eng, err := engine.New(engine.ProviderReflect, nil)
	if err != nil {
		panic(err)
	}

	orders, err := mapper.NewBean[*Order, *OrderView](eng, factory.MustBase[*OrderView, *Order](), nil)
	if err != nil {
		panic(err)
	}

	view := orders.Map(&Order{
		ID:         1,
		CustomerID: 42,
		Status:     StatusShipped,
		TotalCents: 1250,
		Items:      []OrderItem{{ProductID: 7, Name: "Widget", Quantity: 5, UnitPrice: 250}},
	})

	fmt.Printf("%d %d %s %.0f %+v\n", view.ID, view.Customer_ID, view.Status, view.Total_Cents, view.Items)
	// Output:
	// 1 42 SHIPPED 1250 [{Name:Widget Quantity:5}]
}

func ExampleBean_MapAll() {
	eng, err := engine.New(engine.ProviderJSON, nil)
	if err != nil {
		panic(err)
	}

	orders, err := mapper.NewBean[*Order, *OrderView](eng, factory.MustBase[*OrderView, *Order](), nil)
	if err != nil {
		panic(err)
	}

	source := iterables.Of(&Order{ID: 1, Status: StatusPending}, &Order{ID: 2, Status: StatusShipped})

	views, err := orders.MapAll(source)
	if err != nil {
		panic(err)
	}

	for v := range iterables.Seq(views) {
		fmt.Println(v.ID, v.Status)
	}
	// Output:
	// 1 PENDING
	// 2 SHIPPED
}

func ExampleMapKeyed() {
	label := mapper.Func[OrderStatus, string](func(s OrderStatus) string {
		return "status:" + string(s)
	})

	byID, err := mapper.MapKeyed[int64, OrderStatus, string](label, map[int64]OrderStatus{1: StatusPending})
	if err != nil {
		panic(err)
	}

	fmt.Println(byID[1])
	// Output:
	// status:PENDING
}
