package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-automation-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/eventing"
	"github.com/vfg2006/marketing-automation-api/internal/usecases/segmenting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Customers(service segmenting.SegmentService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service),
		},
		{
			// Também atende /api/customers/search
			Path:    "/api/customers/:id",
			Method:  http.MethodGet,
			Handler: GetCustomer(service),
		},
		{
			Path:    "/api/customers/:id/segments",
			Method:  http.MethodGet,
			Handler: GetCustomerSegments(service),
		},
		{
			Path:    "/api/customers/:id/categorize",
			Method:  http.MethodPost,
			Handler: CategorizeCustomer(service),
		},
		{
			Path:    "/api/customers/:id/interests",
			Method:  http.MethodPost,
			Handler: AddCustomerInterest(service),
		},
		{
			Path:    "/api/customers/:id/interests",
			Method:  http.MethodGet,
			Handler: ListCustomerInterests(service),
		},
	}
}

func Segments(service segmenting.SegmentService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/segments",
			Method:  http.MethodGet,
			Handler: ListSegments(service),
		},
		{
			Path:    "/api/segments",
			Method:  http.MethodPost,
			Handler: CreateSegment(service),
		},
		{
			Path:    "/api/segments/:id",
			Method:  http.MethodGet,
			Handler: GetSegment(service),
		},
		{
			Path:    "/api/segments/:id/customers",
			Method:  http.MethodGet,
			Handler: GetSegmentCustomers(service),
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/api/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/api/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			// Também atende /api/campaigns/status/:status, /:id/workflow,
			// /:id/preview e /:id/template
			Path:    "/api/campaigns/:id/:resource",
			Method:  http.MethodGet,
			Handler: GetCampaignResource(service),
		},
		{
			Path:    "/api/campaigns/:id/status",
			Method:  http.MethodPut,
			Handler: ChangeCampaignStatus(service),
		},
		{
			Path:    "/api/campaigns/:id/message",
			Method:  http.MethodPut,
			Handler: UpdateCampaignMessage(service),
		},
		{
			Path:    "/api/campaigns/:id/template",
			Method:  http.MethodPost,
			Handler: AddCampaignTemplate(service),
		},
		{
			Path:    "/api/campaigns/:id/workflow",
			Method:  http.MethodPost,
			Handler: UpsertCampaignWorkflow(service),
		},
		{
			Path:    "/api/campaigns/:id/execute",
			Method:  http.MethodPost,
			Handler: ExecuteCampaign(service),
		},
	}
}

func Analytics(service analyzing.AnalyticsService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			// Também atende /api/analytics/campaigns/summary
			Path:    "/api/analytics/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaignsOverview(service),
		},
		{
			Path:    "/api/analytics/campaigns/:id/:report",
			Method:  http.MethodGet,
			Handler: GetCampaignReport(service),
		},
		{
			Path:    "/api/analytics/campaigns/:id/roi",
			Method:  http.MethodPost,
			Handler: ComputeCampaignROI(service),
		},
		{
			Path:    "/api/analytics/attribution",
			Method:  http.MethodGet,
			Handler: GetAttributionReport(service),
		},
		{
			Path:    "/api/analytics/segments/:id/performance",
			Method:  http.MethodGet,
			Handler: GetSegmentPerformance(service),
		},
		{
			Path:    "/api/analytics/customers/:id/interactions",
			Method:  http.MethodPost,
			Handler: TrackInteraction(service),
		},
		{
			Path:    "/api/analytics/customers/:id/history",
			Method:  http.MethodGet,
			Handler: GetEngagementHistory(service),
		},
	}
}

func Events(service eventing.EventService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/events",
			Method:  http.MethodGet,
			Handler: ListEvents(service),
		},
		{
			Path:    "/api/events/publish",
			Method:  http.MethodPost,
			Handler: PublishEvents(service),
		},
		{
			Path:    "/api/events/process",
			Method:  http.MethodPost,
			Handler: ProcessEvents(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
