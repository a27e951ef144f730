package plant

import (
	"net/http"

	"plantlens/internal/core/care"
	"plantlens/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleCare 處理 /plants/care 照護資料查詢 API。
// 查詢詞依 q、alt、common 優先順序嘗試，調和層保證必有結果。
func HandleCare(reconciler *care.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := care.Query{
			Primary:   c.Query("q"),
			Alternate: c.Query("alt"),
			Common:    c.Query("common"),
		}

		if query.IsEmpty() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing query parameter q/alt/common",
			})
			return
		}

		common.LogInfo("開始處理照護資料查詢",
			zap.String("q", query.Primary),
			zap.String("alt", query.Alternate),
			zap.String("common", query.Common),
		)

		outcome := reconciler.Reconcile(c.Request.Context(), query)
		c.JSON(http.StatusOK, outcome)
	}
}

// HandleCareLocal 處理 /plants/care/local 本地資料查詢 API。
// 不觸發外部呼叫，未命中回傳帶通用值的 fallback 結果。
func HandleCareLocal(reconciler *care.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing query parameter q",
			})
			return
		}

		outcome := reconciler.LookupLocal(q)
		c.JSON(http.StatusOK, outcome)
	}
}
