package client

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// View es la pantalla completa: región de feed y región de dashboard.
// Se rederiva entera desde la sesión en cada transición.
type View struct {
	Feed      FeedView
	Dashboard DashboardView
}

// Controller conecta la sesión, el gateway y los renderers. Cualquier
// mutación de la sesión dispara un re-render total: el selector decide los
// fetches, cada fetch actualiza solo su región, y una respuesta emitida
// bajo una generación vieja se descarta en lugar de pisar la vista nueva.
type Controller struct {
	logger  *zap.Logger
	gateway Gateway
	session *SessionState

	mu   sync.Mutex
	view View
}

func NewController(logger *zap.Logger, gateway Gateway) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		logger:  logger,
		gateway: gateway,
		session: NewSessionState(),
	}
	c.session.OnChange(c.refresh)
	return c
}

// Start ejecuta el render inicial: la carga de página entra al estado none.
func (c *Controller) Start(ctx context.Context) {
	c.refresh(ctx, c.session.Current(), c.session.Generation())
}

// Session devuelve la sesión vigente.
func (c *Controller) Session() Session {
	return c.session.Current()
}

// View devuelve la última vista derivada.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Refresh rederiva la vista completa desde la sesión actual sin mutarla.
// La decisión es idempotente; los fetches se reemiten igual, sin caché.
func (c *Controller) Refresh(ctx context.Context) {
	c.refresh(ctx, c.session.Current(), c.session.Generation())
}

// Login autentica contra el gateway y, si el servidor acepta, muta la
// sesión; eso re-renderiza sincrónicamente antes de devolver el mensaje.
// Con credenciales inválidas la sesión queda intacta y no se fetchea nada.
func (c *Controller) Login(ctx context.Context, email, password string) (string, error) {
	res, err := c.gateway.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	c.session.Set(ctx, res.UserID, res.UserType)
	return res.Message, nil
}

// Signup registra un usuario. No toca la sesión: el flujo original exige
// loguearse después de registrarse.
func (c *Controller) Signup(ctx context.Context, email, password string, userType UserType) (string, error) {
	return c.gateway.Register(ctx, email, password, userType)
}

// RecordInterest manda el like del tenant actual. La sesión no cambia y no
// hay guardas contra repetir el envío: deduplicar es problema del servidor.
func (c *Controller) RecordInterest(ctx context.Context, propertyID int64) (string, error) {
	sess := c.session.Current()
	return c.gateway.RecordInterest(ctx, propertyID, sess.UserID)
}

// refresh ejecuta el plan del selector para la sesión dada. Los fetches de
// dashboard y feed del estado tenant corren concurrentes y sin orden
// relativo; cada uno aplica solo su región. Las regiones que el plan no
// incluye se reemplazan por vacío, nunca se dejan con contenido viejo.
func (c *Controller) refresh(ctx context.Context, sess Session, gen uint64) {
	plan := PlanFor(sess)

	var wg sync.WaitGroup

	if plan.ShowFeed {
		wg.Add(1)
		go func() {
			defer wg.Done()
			props, err := c.gateway.ListProperties(ctx)
			if err != nil {
				c.applyFeed(gen, RenderFeedError(err.Error()))
				return
			}
			c.applyFeed(gen, RenderFeed(props, sess.UserType))
		}()
	} else {
		c.applyFeed(gen, FeedView{})
	}

	switch plan.Dashboard {
	case UserTypeTenant:
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries, err := c.gateway.FetchTenantDashboard(ctx, sess.UserID)
			if err != nil {
				c.applyDashboard(gen, RenderDashboardError(UserTypeTenant, err.Error()))
				return
			}
			c.applyDashboard(gen, RenderTenantDashboard(entries))
		}()
	case UserTypeOwner:
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries, err := c.gateway.FetchOwnerDashboard(ctx, sess.UserID)
			if err != nil {
				c.applyDashboard(gen, RenderDashboardError(UserTypeOwner, err.Error()))
				return
			}
			c.applyDashboard(gen, RenderOwnerDashboard(entries))
		}()
	default:
		c.applyDashboard(gen, DashboardView{Kind: UserTypeNone})
	}

	wg.Wait()
}

// applyFeed reemplaza la región del feed si la respuesta sigue vigente.
func (c *Controller) applyFeed(gen uint64, fv FeedView) {
	if c.session.Generation() != gen {
		c.logger.Debug("discarding stale feed response", zap.Uint64("generation", gen))
		return
	}
	c.mu.Lock()
	c.view.Feed = fv
	c.mu.Unlock()
}

// applyDashboard reemplaza la región del dashboard si la respuesta sigue
// vigente.
func (c *Controller) applyDashboard(gen uint64, dv DashboardView) {
	if c.session.Generation() != gen {
		c.logger.Debug("discarding stale dashboard response", zap.Uint64("generation", gen))
		return
	}
	c.mu.Lock()
	c.view.Dashboard = dv
	c.mu.Unlock()
}
