package parser

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/"
     xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>Example News</title>
    <description>All the news</description>
    <link>https://example.com/</link>
    <item>
      <title>First post</title>
      <link>https://example.com/posts/1</link>
      <pubDate>Mon, 02 Jan 2023 10:00:00 GMT</pubDate>
      <dc:creator>Jane Doe</dc:creator>
      <description>Short summary</description>
      <content:encoded><![CDATA[<p>Full <b>body</b></p>]]></content:encoded>
      <media:content url="https://cdn.example.com/lead.jpg" medium="image" width="800" height="600"/>
    </item>
    <item>
      <title>Second post</title>
      <link>/posts/2</link>
      <dc:date>2023-01-03T08:00:00Z</dc:date>
      <description>&lt;p&gt;Encoded &amp;amp; escaped&lt;/p&gt;</description>
      <enclosure url="https://cdn.example.com/photo.png" type="image/png" length="1024"/>
    </item>
  </channel>
</rss>`

const atomFixture = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example Atom</title>
  <subtitle>Atom subtitle</subtitle>
  <entry>
    <title>Atom entry</title>
    <link rel="self" href="https://example.com/atom/1.xml"/>
    <link rel="alternate" href="https://example.com/atom/1"/>
    <published>2023-05-01T12:00:00Z</published>
    <updated>2023-06-01T12:00:00Z</updated>
    <author><name>John Roe</name></author>
    <summary>Summary text</summary>
    <content type="html">&lt;p&gt;Entry content&lt;/p&gt;</content>
  </entry>
  <entry>
    <title>Only updated</title>
    <link href="https://example.com/atom/2"/>
    <updated>2023-06-02T12:00:00Z</updated>
    <content type="xhtml"><div xmlns="http://www.w3.org/1999/xhtml"><p>Inline <em>xhtml</em></p></div></content>
  </entry>
</feed>`

const rdfFixture = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel rdf:about="https://example.org/">
    <title>RDF Feed</title>
    <description>RSS 1.0</description>
  </channel>
  <item rdf:about="https://example.org/a">
    <title>RDF item</title>
    <link>https://example.org/a</link>
    <dc:date>2023-02-01T00:00:00Z</dc:date>
    <description>rdf body</description>
  </item>
</rdf:RDF>`

const customXMLFixture = `<?xml version="1.0"?>
<export>
  <title>Custom export</title>
  <records>
    <article>
      <headline>Loose one</headline>
      <url>https://example.net/1</url>
      <date>2023-03-01T00:00:00Z</date>
      <body>First body</body>
    </article>
    <article>
      <headline>Loose two</headline>
      <url>https://example.net/2</url>
      <body>Second body</body>
    </article>
  </records>
</export>`

const emptyRSSFixture = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Quiet Feed</title><description>nothing yet</description></channel></rss>`

const blogPageFixture = `<!DOCTYPE html>
<html><head><title>Example Blog</title><meta name="description" content="A blog"></head>
<body>
  <article>
    <h2>Post one</h2>
    <a href="/p/1">Read</a>
    <time datetime="2023-04-01T09:00:00Z">April 1</time>
    <p>Body one</p>
    <div class="entry"><h3>Nested, not separate</h3></div>
  </article>
  <div class="post">
    <span class="title">Post two</span>
    <a href="https://other.example/p/2">Read</a>
    <p>Body two</p>
  </div>
</body></html>`

const plainPageFixture = `<!DOCTYPE html>
<html><head><title>Plain Page</title></head>
<body>
  <nav>Home | About</nav>
  <main><h1>Welcome</h1><p>This page has no feed, only prose about many things.</p></main>
</body></html>`

const xhtmlBlogFixture = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Strict Blog</title></head>
<body>
  <article>
    <h2>First strict post</h2>
    <a href="/posts/1">Read more</a>
    <p>Well-formed body one</p>
  </article>
  <article>
    <h2>Second strict post</h2>
    <a href="/posts/2">Read more</a>
    <p>Well-formed body two</p>
  </article>
</body>
</html>`

const hollowItemsFixture = `<?xml version="1.0"?>
<export>
  <item><id>1</id></item>
  <item><id>2</id></item>
</export>`
