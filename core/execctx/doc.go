// Package execctx provides the execution context passed alongside every
// request, modeled on the waitUntil contract of edge runtimes.
//
//	exec := execctx.New(r.Context(), 0)
//	resp := router.Fetch(r, env, exec)
//	_ = resp.Write(r.Context(), w)
//	if err := exec.Wait(); err != nil {
//		logger.Error("background task failed", logger.Error(err))
//	}
package execctx
