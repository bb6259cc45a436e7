package erp

import (
	"context"
	"net/http"
	"net/url"

	"socialdots/internal/infrastructure/config"
	"socialdots/internal/infrastructure/httpclient"
	"socialdots/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrERPNotConfigured = errors.Wrap(interfaces.ErrNotConfigured, "erp")
	ErrEmptyDocName     = errors.New("erp returned no document name")
	ErrPingFailed       = errors.New("erp ping did not answer pong")
)

const dateLayout = "2006-01-02"

// FrappeClient talks to the Frappe/ERPNext REST resource API with token auth.
type FrappeClient struct {
	http       *httpclient.Client
	configured bool
}

var _ interfaces.IERPClient = (*FrappeClient)(nil)

func NewFrappeClient(cfg config.ERPConfig) *FrappeClient {
	if !cfg.Configured() {
		logrus.Warn("[erp][frappe] FRAPPE_URL/FRAPPE_API_KEY/FRAPPE_API_SECRET not set, ERP push disabled")
	}
	return &FrappeClient{
		http: httpclient.New(cfg.URL, cfg.Timeout, map[string]string{
			"Authorization": "token " + cfg.APIKey + ":" + cfg.APISecret,
		}),
		configured: cfg.Configured(),
	}
}

// HTTPClient exposes the transport for tests.
func (c *FrappeClient) HTTPClient() *http.Client {
	return c.http.HTTPClient()
}

type docResponse struct {
	Data struct {
		Name      string `json:"name"`
		DocStatus int    `json:"docstatus"`
	} `json:"data"`
}

func resourcePath(doctype string, name ...string) string {
	p := "/api/resource/" + url.PathEscape(doctype)
	for _, n := range name {
		p += "/" + url.PathEscape(n)
	}
	return p
}

func (c *FrappeClient) insert(ctx context.Context, doctype string, doc map[string]any) (string, error) {
	if !c.configured {
		return "", ErrERPNotConfigured
	}
	doc["doctype"] = doctype

	var resp docResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, resourcePath(doctype), doc, &resp); err != nil {
		logrus.WithError(err).WithField("doctype", doctype).Error("[erp][frappe] insert failed")
		return "", errors.Wrapf(err, "create %s", doctype)
	}
	if resp.Data.Name == "" {
		return "", ErrEmptyDocName
	}
	logrus.WithFields(logrus.Fields{"doctype": doctype, "name": resp.Data.Name}).Info("[erp][frappe] document created")
	return resp.Data.Name, nil
}

func (c *FrappeClient) CreateCustomer(ctx context.Context, cu interfaces.ERPCustomer) (string, error) {
	return c.insert(ctx, "Customer", map[string]any{
		"customer_name":  cu.Name,
		"customer_type":  "Individual",
		"customer_group": "Individual",
		"territory":      "Canada",
		"email_id":       cu.Email,
		"mobile_no":      cu.Phone,
	})
}

func (c *FrappeClient) CreateSalesOrder(ctx context.Context, so interfaces.ERPSalesOrder) (string, error) {
	items := make([]map[string]any, 0, len(so.Items))
	for _, it := range so.Items {
		items = append(items, map[string]any{
			"item_code":   it.ItemCode,
			"item_name":   it.ItemName,
			"description": it.Description,
			"qty":         it.Qty,
			"rate":        it.Rate,
			"amount":      it.Rate * float64(it.Qty),
		})
	}
	date := so.TransactionDate.Format(dateLayout)
	notes := so.Notes
	if notes == "" {
		notes = "Order from SocialDots.ca - " + so.OrderID
	}

	return c.insert(ctx, "Sales Order", map[string]any{
		"customer":          so.Customer,
		"order_type":        "Sales",
		"transaction_date":  date,
		"delivery_date":     date,
		"items":             items,
		"custom_order_id":   so.OrderID,
		"custom_payment_id": so.PaymentID,
		"custom_notes":      notes,
	})
}

func (c *FrappeClient) GetSalesOrder(ctx context.Context, name string) (interfaces.ERPSalesOrderState, error) {
	if !c.configured {
		return interfaces.ERPSalesOrderState{}, ErrERPNotConfigured
	}
	var resp docResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, resourcePath("Sales Order", name), nil, &resp); err != nil {
		return interfaces.ERPSalesOrderState{}, errors.Wrap(err, "get sales order")
	}
	return interfaces.ERPSalesOrderState{Name: resp.Data.Name, DocStatus: resp.Data.DocStatus}, nil
}

// SubmitSalesOrder moves a draft sales order to submitted (docstatus 1).
func (c *FrappeClient) SubmitSalesOrder(ctx context.Context, name string) error {
	if !c.configured {
		return ErrERPNotConfigured
	}
	if err := c.http.DoJSON(ctx, http.MethodPut, resourcePath("Sales Order", name), map[string]any{"docstatus": 1}, nil); err != nil {
		logrus.WithError(err).WithField("name", name).Error("[erp][frappe] submit failed")
		return errors.Wrap(err, "submit sales order")
	}
	logrus.WithField("name", name).Info("[erp][frappe] sales order submitted")
	return nil
}

func (c *FrappeClient) CreateProject(ctx context.Context, p interfaces.ERPProject) (string, error) {
	return c.insert(ctx, "Project", map[string]any{
		"project_name":        p.Name,
		"customer":            p.Customer,
		"sales_order":         p.SalesOrder,
		"expected_start_date": p.StartDate.Format(dateLayout),
		"project_type":        "External",
		"status":              "Open",
		"custom_order_id":     p.OrderID,
		"custom_client_email": p.ClientEmail,
		"custom_client_phone": p.ClientPhone,
	})
}

func (c *FrappeClient) CreateTask(ctx context.Context, t interfaces.ERPTask) (string, error) {
	priority := t.Priority
	if priority == "" {
		priority = "Medium"
	}
	return c.insert(ctx, "Task", map[string]any{
		"subject":     t.Subject,
		"description": t.Description,
		"project":     t.Project,
		"priority":    priority,
		"status":      "Open",
	})
}

func (c *FrappeClient) Ping(ctx context.Context) error {
	if !c.configured {
		return ErrERPNotConfigured
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/method/frappe.ping", nil, &resp); err != nil {
		return errors.Wrap(err, "ping erp")
	}
	if resp.Message != "pong" {
		return ErrPingFailed
	}
	return nil
}
