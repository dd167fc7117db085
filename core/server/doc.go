// Package server runs an http.Handler with production timeouts and graceful
// shutdown. It is usually paired with a router and an errgroup:
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, r))
//	return g.Wait()
//
// Shutdown waits for in-flight requests, which includes background tasks a
// router awaits after writing the response.
package server
