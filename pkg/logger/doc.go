// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions. The options
// select the output format (text or json), the minimum level, static
// attributes and ContextExtractor callbacks that pull request-scoped values
// such as the request id or the negotiated locale out of the context on
// every record.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it with LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks before delegating to the underlying
// handler.
//
// Helper constructors in attr.go (Error, RequestID, Locale, Field, Code,
// HTTPRequest and others) keep attribute names consistent across the code
// base.
//
// # Usage
//
//	import "github.com/armoredgo/armored/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithEnvironment(environment.Parse(os.Getenv("APP_ENV")), "armored"),
//	        logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.InfoContext(ctx, "validation failed",
//	        logger.Field("cpf"),
//	        logger.Code("cpf_invalid"),
//	    )
//	}
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithTest set per-environment defaults.
//   - WithEnvironment picks one of them from an environment.Environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter override the output format.
//   - WithLevel / WithLevelName set the minimum level.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context.
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, so they can be passed without a nil check:
//
//	log.Info("operation finished", logger.Error(err))
package logger
