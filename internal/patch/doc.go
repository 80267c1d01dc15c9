/*
Package patch turns a loaded patch model into a live, wired rack.

It acts as the bridge between the static configuration model (defined in
the 'config' package) and the runtime signal graph (the 'block' package).

Construction is a two-phase process:

 1. Instantiation: every declared block is built through its registered
    factory, which creates the block and its ports inside a shared rack.

 2. Wiring: every declared wire is resolved to a source and a destination
    port and connected. Endpoints without a port segment address the
    block's primary output or input.

Errors from both phases are collected rather than aborting on the first
one, so a single run reports every problem in a patch file.
*/
package patch
