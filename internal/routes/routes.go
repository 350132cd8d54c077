package routes

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sales-voucher/internal/controllers"
)

// requestID tags every response so gateway errors can be correlated with
// server logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func Register(gdb *gorm.DB) *gin.Engine {
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("get sql db: %v", err)
	}

	items := controllers.ItemController{DB: sqlDB}
	vouchers := controllers.VoucherController{DB: sqlDB}
	reports := controllers.ReportController{DB: gdb}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: false,
	}))
	r.Use(requestID())

	// Paths mirror the API the entry client was written against, so they
	// stay unprefixed.
	r.GET("/item", func(c *gin.Context) { items.CreateOrList(c.Writer, c.Request) })
	r.POST("/item", func(c *gin.Context) { items.CreateOrList(c.Writer, c.Request) })
	r.POST("/item/bulk", func(c *gin.Context) { items.BulkImport(c.Writer, c.Request) })

	r.GET("/header", func(c *gin.Context) { vouchers.List(c.Writer, c.Request) })
	// "next-number" shares the :vr_no segment, so it is dispatched here
	// instead of registering a conflicting static route.
	r.GET("/header/:vr_no", func(c *gin.Context) {
		if c.Param("vr_no") == "next-number" {
			vouchers.NextNumber(c.Writer, c.Request)
			return
		}
		vouchers.GetByVrNo(c.Writer, c.Request, c.Param("vr_no"))
	})
	r.POST("/header/multiple", func(c *gin.Context) { vouchers.CreateMultiple(c.Writer, c.Request) })

	r.GET("/detail", func(c *gin.Context) { vouchers.ListDetails(c.Writer, c.Request) })

	r.GET("/reports/accounts", func(c *gin.Context) { reports.AccountSummary(c.Writer, c.Request) })
	r.GET("/reports/status", func(c *gin.Context) { reports.StatusSummary(c.Writer, c.Request) })

	return r
}
