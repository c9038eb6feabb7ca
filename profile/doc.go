/*
Package profile loads the description of a composite key from a JSON
configuration document.

A profile names the component schemes to combine, in order, together with the
digest algorithm, the signature encoding and whether components should be
processed in parallel. It is read from the "composite" key of a configuration
document:

	{
	  "composite": {
	    "components": ["ed25519", "mldsa44"],
	    "digest": "sha256",
	    "encoding": "der",
	    "parallel": true
	  }
	}

Any problem with the configuration is reported as a field error so that all
mistakes are shown at once.
*/
package profile
