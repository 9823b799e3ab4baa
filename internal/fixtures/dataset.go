package fixtures

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
	"go.uber.org/multierr"
)

// Counts sizes a generated dataset.
type Counts struct {
	Vendors         int `json:"vendors"`
	DeliveryPersons int `json:"deliveryPersons"`
	Customers       int `json:"customers"`
	Orders          int `json:"orders"`
	Complaints      int `json:"complaints"`
}

// Dataset is a consistent set of documents: every order points at a
// generated vendor and customer, and every task at a generated rider.
type Dataset struct {
	Vendors         []models.Vendor
	DeliveryPersons []models.DeliveryPerson
	Customers       []models.Customer
	Orders          []models.Order
	Tasks           []models.DeliveryTask
	Complaints      []models.Complaint
}

// Generate builds a dataset. Orders and complaints are skipped when there is
// nothing for them to reference.
func (f *Factory) Generate(counts Counts) Dataset {
	var ds Dataset
	for i := 0; i < counts.Vendors; i++ {
		ds.Vendors = append(ds.Vendors, f.Vendor())
	}
	for i := 0; i < counts.DeliveryPersons; i++ {
		ds.DeliveryPersons = append(ds.DeliveryPersons, f.DeliveryPerson())
	}
	for i := 0; i < counts.Customers; i++ {
		ds.Customers = append(ds.Customers, f.Customer())
	}
	if len(ds.Vendors) == 0 || len(ds.Customers) == 0 {
		return ds
	}

	for i := 0; i < counts.Orders; i++ {
		vendor := ds.Vendors[f.fake.IntBetween(0, len(ds.Vendors)-1)]
		customer := ds.Customers[f.fake.IntBetween(0, len(ds.Customers)-1)]
		var rider string
		if len(ds.DeliveryPersons) > 0 {
			rider = ds.DeliveryPersons[f.fake.IntBetween(0, len(ds.DeliveryPersons)-1)].ID
		}
		order := f.Order(vendor.ID, customer.ID, rider)
		ds.Orders = append(ds.Orders, order)
		if task := f.Task(order); task != nil {
			ds.Tasks = append(ds.Tasks, *task)
		}
	}
	if len(ds.Orders) == 0 {
		return ds
	}
	for i := 0; i < counts.Complaints; i++ {
		ds.Complaints = append(ds.Complaints, f.Complaint(ds.Orders[f.fake.IntBetween(0, len(ds.Orders)-1)]))
	}
	return ds
}

// Counts reports how many documents of each kind the dataset holds.
func (d Dataset) Counts() Counts {
	return Counts{
		Vendors:         len(d.Vendors),
		DeliveryPersons: len(d.DeliveryPersons),
		Customers:       len(d.Customers),
		Orders:          len(d.Orders),
		Complaints:      len(d.Complaints),
	}
}

// Write stores the dataset with a BulkWriter. Every document is attempted;
// failures are returned together.
func Write(ctx context.Context, client *firestore.Client, ds Dataset) error {
	bw := client.BulkWriter(ctx)
	var (
		jobs []*firestore.BulkWriterJob
		errs error
	)
	set := func(collection, id string, doc any) {
		job, err := bw.Set(client.Collection(collection).Doc(id), doc)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("queue %s/%s: %w", collection, id, err))
			return
		}
		jobs = append(jobs, job)
	}

	for _, v := range ds.Vendors {
		set(db.CollectionVendors, v.ID, v)
	}
	for _, p := range ds.DeliveryPersons {
		set(db.CollectionDeliveryPersons, p.ID, p)
	}
	for _, c := range ds.Customers {
		set(db.CollectionCustomers, c.ID, c)
	}
	for _, o := range ds.Orders {
		set(db.CollectionOrders, o.ID, o)
	}
	for _, t := range ds.Tasks {
		set(db.CollectionDeliveryTasks, t.ID, t)
	}
	for _, c := range ds.Complaints {
		set(db.CollectionComplaints, c.ID, c)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
