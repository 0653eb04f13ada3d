/*
Package notation parses the colon-separated model notation used for model
names, e.g. `AB:BC`, `IV:AZ:BZ` or `IVI:ABC`, into variable index sets.

Each component is a run of variable abbreviations (an upper-case letter
followed by lower-case letters). Two tokens are reserved:

  - IV, in directed systems, stands for one relation over every independent
    variable.
  - IVI, in undirected systems, stands for one single-variable relation per
    variable that no other component mentions.
*/
package notation
