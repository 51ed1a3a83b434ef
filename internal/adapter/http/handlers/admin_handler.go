package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	request "sien_official/internal/adapter/http/dto/request"
	response "sien_official/internal/adapter/http/dto/response"
	"sien_official/internal/adapter/http/middleware"
	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase"
	"sien_official/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errPublicRead = pkg.NewDomainErrorSimple("STORE_ERROR", "DB Error", http.StatusInternalServerError)

// AdminHandler serves /api/admin: the public projection, the admin snapshot and the admin actions.
// The access gate runs before it; the public read is the only request that skips the gate.
type AdminHandler struct {
	orders usecase.IOrderUseCase
	site   usecase.ISiteContentUseCase
}

func NewAdminHandler(orders usecase.IOrderUseCase, site usecase.ISiteContentUseCase) *AdminHandler {
	return &AdminHandler{orders: orders, site: site}
}

// Get godoc
// @Summary      Read site content
// @Description  With type=public returns the public projection without credentials. Otherwise returns everything including orders and archive.
// @Tags         admin
// @Produce      json
// @Param        type              query   string  false  "public for the unauthenticated projection"
// @Param        skip              query   int     false  "orders to skip"                          default(0)
// @Param        limit             query   int     false  "orders per page"                         default(50)
// @Param        x-admin-password  header  string  false  "admin password"
// @Success      200  {object}  response.AdminContentResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/admin [get]
func (h *AdminHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if middleware.IsPublicRead(c) {
		content, err := h.site.PublicContent(ctx)
		if err != nil {
			middleware.Logger(c).Error("public read failed", zap.Error(err))
			writeError(c, errPublicRead)
			return
		}
		c.JSON(http.StatusOK, response.FromSiteContent(content))
		return
	}

	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", usecase.DefaultPageLimit)

	orders, err := h.orders.ListPage(ctx, skip, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	archive, err := h.orders.ListArchive(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	content, err := h.site.PublicContent(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAdminContent(content, orders, archive))
}

// Post godoc
// @Summary      Run an admin action
// @Description  Actions: update_portfolio, update_prices, update_news, update_voices, update_order_status, archive_order, restore_order, create_payment_link.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        x-admin-password  header  string                      true  "admin password"
// @Param        body              body    request.AdminActionRequest  true  "action envelope"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/admin [post]
func (h *AdminHandler) Post(c *gin.Context) {
	var req request.AdminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	body, err := h.dispatch(c, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	middleware.Logger(c).Info("admin action applied", zap.String("action", req.Action))
	c.JSON(http.StatusOK, body)
}

func (h *AdminHandler) dispatch(c *gin.Context, req request.AdminActionRequest) (any, error) {
	ctx := c.Request.Context()
	ok := response.SuccessResponse{Success: true}

	switch req.Action {
	case request.ActionUpdatePortfolio:
		var d request.UpdatePortfolioRequest
		if err := decodeData(req.Data, &d); err != nil {
			return nil, err
		}
		_, err := h.site.UpdatePortfolio(ctx, entities.PortfolioCategory(d.Category), d.Items)
		return ok, err

	case request.ActionUpdatePrices:
		if len(req.Data) == 0 {
			return nil, usecase.ErrInvalidPayload
		}
		return ok, h.site.UpdatePrices(ctx, req.Data)

	case request.ActionUpdateNews:
		if len(req.Data) == 0 {
			return nil, usecase.ErrInvalidPayload
		}
		return ok, h.site.UpdateNews(ctx, req.Data)

	case request.ActionUpdateVoices:
		if len(req.Data) == 0 {
			return nil, usecase.ErrInvalidPayload
		}
		return ok, h.site.UpdateVoices(ctx, req.Data)

	case request.ActionUpdateOrderStatus:
		var d request.UpdateOrderStatusRequest
		if err := decodeData(req.Data, &d); err != nil {
			return nil, err
		}
		var err error
		switch {
		case d.OrderID != "":
			_, err = h.orders.UpdateByID(ctx, string(d.OrderID), d.ToPatch())
		case d.Index != nil:
			_, err = h.orders.UpdateByIndex(ctx, *d.Index, d.ToPatch())
		default:
			err = usecase.ErrInvalidOrderID
		}
		return ok, err

	case request.ActionArchiveOrder, request.ActionRestoreOrder:
		var d request.OrderIndexRequest
		if err := decodeData(req.Data, &d); err != nil {
			return nil, err
		}
		if d.Index == nil {
			return nil, usecase.ErrInvalidPayload
		}
		move := h.orders.ArchiveByIndex
		if req.Action == request.ActionRestoreOrder {
			move = h.orders.RestoreByIndex
		}
		moved, err := move(ctx, *d.Index)
		return response.MoveResponse{Success: true, Moved: moved}, err

	case request.ActionCreatePaymentLink:
		var d request.CreatePaymentLinkRequest
		if err := decodeData(req.Data, &d); err != nil {
			return nil, err
		}
		link, err := h.orders.CreatePaymentLink(ctx, d.ToDomain())
		return response.PaymentLinkResponse{Success: true, PaymentLink: link}, err

	default:
		return nil, usecase.ErrUnknownAction
	}
}

func (h *AdminHandler) fail(c *gin.Context, err error) {
	appErr := mapAdminError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		middleware.Logger(c).Error("admin request failed", zap.Error(err))
	}
	writeError(c, appErr)
}

func decodeData(data json.RawMessage, dst any) error {
	if len(data) == 0 {
		return usecase.ErrInvalidPayload
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return usecase.ErrInvalidPayload
	}
	return nil
}

// queryInt parses a query parameter, using def when it is absent or not a number.
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
