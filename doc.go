// Package barline provides a multi-queue round-robin order dispatch
// engine modelled on classic round-robin CPU scheduling.
//
// Orders with an integer service cost are admitted into fixed-capacity
// FIFO lines and serviced by visiting lines in creation order, each
// visit granting a bounded quantum of work. The engine emits a
// deterministic event log that drivers forward verbatim.
//
// End-users typically interact via the high-level Service façade
// exposed by the root package:
//
//	srv := barline.New()
//	sess := srv.Session()
//	_ = sess.Run(ctx, os.Stdin)
//
// The dispatcher can also be driven programmatically:
//
//	d := srv.Dispatcher()
//	logs, _ := d.CreateQueue(ctx, "WalkIns", 2)
//	logs = d.Admit(ctx, "WalkIns", "latte")
//	logs = d.Run(ctx, 1)
//
// For more details see the individual sub-packages.
package barline
